package basket

import (
	"context"
	"errors"
	"testing"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOrCreateOpenBasket(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetLineByProductInfo(ctx context.Context, basketID, productInfoID int) (int, bool, error) {
	args := m.Called(ctx, basketID, productInfoID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockRepository) CreateLine(ctx context.Context, basketID, productInfoID, quantity int) error {
	args := m.Called(ctx, basketID, productInfoID, quantity)
	return args.Error(0)
}

func (m *MockRepository) SetLineQuantity(ctx context.Context, lineID, quantity int) error {
	args := m.Called(ctx, lineID, quantity)
	return args.Error(0)
}

func (m *MockRepository) UpdateLineQuantity(ctx context.Context, userID, lineID, quantity int) (bool, error) {
	args := m.Called(ctx, userID, lineID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteLines(ctx context.Context, userID int, ids []int) (int, error) {
	args := m.Called(ctx, userID, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetRows(ctx context.Context, userID int) ([]lineRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lineRow), args.Error(1)
}

// MockProductRepository is a mock for the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProducts(ctx context.Context, filter product.Filter) ([]*product.ProductInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.ProductInfo), args.Error(1)
}

func (m *MockProductRepository) FilterExisting(ctx context.Context, ids []int) (map[int]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]bool), args.Error(1)
}

func TestService_AddItems(t *testing.T) {
	t.Run("CreatesNewLines", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("FilterExisting", mock.Anything, []int{1, 2}).
			Return(map[int]bool{1: true, 2: true}, nil)
		mockRepo.On("GetOrCreateOpenBasket", mock.Anything, 1).Return(5, nil)
		mockRepo.On("GetLineByProductInfo", mock.Anything, 5, 1).Return(0, false, nil)
		mockRepo.On("GetLineByProductInfo", mock.Anything, 5, 2).Return(0, false, nil)
		mockRepo.On("CreateLine", mock.Anything, 5, 1, 13).Return(nil)
		mockRepo.On("CreateLine", mock.Anything, 5, 2, 12).Return(nil)

		created, err := svc.AddItems(context.Background(), 1, []AddItemInput{
			{ProductInfoID: 1, Quantity: 13},
			{ProductInfoID: 2, Quantity: 12},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, created)
		mockRepo.AssertExpectations(t)
	})

	t.Run("DuplicateProductUpdatesInsteadOfCreating", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("FilterExisting", mock.Anything, []int{1}).
			Return(map[int]bool{1: true}, nil)
		mockRepo.On("GetOrCreateOpenBasket", mock.Anything, 1).Return(5, nil)
		mockRepo.On("GetLineByProductInfo", mock.Anything, 5, 1).Return(9, true, nil)
		mockRepo.On("SetLineQuantity", mock.Anything, 9, 4).Return(nil)

		created, err := svc.AddItems(context.Background(), 1, []AddItemInput{
			{ProductInfoID: 1, Quantity: 4},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, created)
		mockRepo.AssertNotCalled(t, "CreateLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownProductFailsValidation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("FilterExisting", mock.Anything, []int{404}).
			Return(map[int]bool{}, nil)

		_, err := svc.AddItems(context.Background(), 1, []AddItemInput{
			{ProductInfoID: 404, Quantity: 1},
		})

		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "GetOrCreateOpenBasket", mock.Anything, mock.Anything)
	})

	t.Run("NonPositiveQuantityFailsValidation", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.AddItems(context.Background(), 1, []AddItemInput{
			{ProductInfoID: 1, Quantity: 0},
		})

		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("EmptyItemsFailsValidation", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.AddItems(context.Background(), 1, nil)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_UpdateItems(t *testing.T) {
	t.Run("CountsOnlySuccessfulUpdates", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("UpdateLineQuantity", mock.Anything, 1, 1, 2).Return(true, nil)
		mockRepo.On("UpdateLineQuantity", mock.Anything, 1, 99, 1).Return(false, nil)

		updated, err := svc.UpdateItems(context.Background(), 1, []UpdateItemInput{
			{ID: 1, Quantity: 2},
			{ID: 99, Quantity: 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("ZeroQuantityFailsValidation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		_, err := svc.UpdateItems(context.Background(), 1, []UpdateItemInput{
			{ID: 1, Quantity: 0},
		})

		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "UpdateLineQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativeQuantityFailsValidation", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.UpdateItems(context.Background(), 1, []UpdateItemInput{
			{ID: 1, Quantity: -3},
		})

		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("UpdateLineQuantity", mock.Anything, 1, 1, 2).
			Return(false, errors.New("db error"))

		_, err := svc.UpdateItems(context.Background(), 1, []UpdateItemInput{
			{ID: 1, Quantity: 2},
		})
		assert.Error(t, err)
	})
}

func TestService_DeleteItems(t *testing.T) {
	t.Run("UnknownIdsSkipped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("DeleteLines", mock.Anything, 1, []int{2, 99}).Return(1, nil)

		deleted, err := svc.DeleteItems(context.Background(), 1, []int{2, 99})
		assert.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})

	t.Run("EmptyIdsFailsValidation", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.DeleteItems(context.Background(), 1, nil)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_GetItems(t *testing.T) {
	t.Run("EmptyBasketIsNotAnError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("GetRows", mock.Anything, 1).Return([]lineRow{}, nil)

		view, err := svc.GetItems(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Zero(t, view.Total)
	})

	t.Run("ComputesTotals", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("GetRows", mock.Anything, 1).Return([]lineRow{
			{LineID: 1, BasketID: 5, ProductInfoID: 10, Quantity: 2, Price: 100},
			{LineID: 2, BasketID: 5, ProductInfoID: 11, Quantity: 1, Price: 50},
		}, nil)

		view, err := svc.GetItems(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 5, view.ID)
		assert.Len(t, view.Lines, 2)
		assert.Equal(t, 200.0, view.Lines[0].Sum)
		assert.Equal(t, 250.0, view.Total)
	})
}
