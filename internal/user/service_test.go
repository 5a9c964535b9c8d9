package user

import (
	"context"
	"errors"
	"testing"

	"marketflow-be/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params RegisterParams, hashedPassword string) (User, error) {
	args := m.Called(ctx, params, hashedPassword)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockRepository) SaveConfirmToken(ctx context.Context, userID int, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

func (m *MockRepository) Activate(ctx context.Context, email, key string) (bool, error) {
	args := m.Called(ctx, email, key)
	return args.Bool(0), args.Error(1)
}

func validParams() RegisterParams {
	return RegisterParams{
		FirstName: "Pavel",
		LastName:  "Shatilov",
		Email:     "real@gmail.com",
		Password:  "Shatilov789",
		Company:   "Bulki",
		Position:  "Manager",
		Type:      "shop",
	}
}

func TestService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(User{ID: 1, Email: "real@gmail.com", Type: RoleShop}, nil)
		mockRepo.On("SaveConfirmToken", mock.Anything, 1, mock.Anything).Return(nil)

		u, err := svc.Register(context.Background(), validParams())
		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		params := validParams()
		params.Email = ""

		_, err := svc.Register(context.Background(), params)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		params := validParams()
		params.Password = "789"

		_, err := svc.Register(context.Background(), params)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("UnknownType", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		params := validParams()
		params.Type = "admin"

		_, err := svc.Register(context.Background(), params)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := svc.Register(context.Background(), validParams())
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Confirm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Activate", mock.Anything, "real@gmail.com", "key-1").Return(true, nil)

		err := svc.Confirm(context.Background(), "real@gmail.com", "key-1")
		assert.NoError(t, err)
	})

	t.Run("WrongToken", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Activate", mock.Anything, "real@gmail.com", "bad").Return(false, nil)

		err := svc.Confirm(context.Background(), "real@gmail.com", "bad")
		assert.ErrorIs(t, err, ErrTokenMismatch)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		err := svc.Confirm(context.Background(), "", "")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("789789")
	require.NoError(t, err)

	active := User{ID: 1, Email: "real@gmail.com", Password: hash, Type: RoleShop, IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "real@gmail.com").Return(active, nil)

		token, u, err := svc.Login(context.Background(), "real@gmail.com", "789789")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "nobody@gmail.com").
			Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(context.Background(), "nobody@gmail.com", "789789")
		assert.Error(t, err)
		assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "real@gmail.com").Return(active, nil)

		_, _, err := svc.Login(context.Background(), "real@gmail.com", "wrong")
		assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		inactive := active
		inactive.IsActive = false
		mockRepo.On("FindByEmail", mock.Anything, "real@gmail.com").Return(inactive, nil)

		_, _, err := svc.Login(context.Background(), "real@gmail.com", "789789")
		assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	})
}

func TestService_UpdateDetails(t *testing.T) {
	t.Run("RehashesPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p UpdateParams) bool {
			return p.Password != nil && *p.Password != "NewPass789" && CheckPasswordHash("NewPass789", *p.Password)
		})).Return(nil)

		pass := "NewPass789"
		err := svc.UpdateDetails(context.Background(), UpdateParams{UserID: 1, Password: &pass})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		pass := "789"
		err := svc.UpdateDetails(context.Background(), UpdateParams{UserID: 1, Password: &pass})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}
