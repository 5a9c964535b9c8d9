package basket

import (
	"context"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"
	"marketflow-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for the open basket.
type Service interface {
	AddItems(ctx context.Context, userID int, items []AddItemInput) (int, error)
	GetItems(ctx context.Context, userID int) (*View, error)
	UpdateItems(ctx context.Context, userID int, items []UpdateItemInput) (int, error)
	DeleteItems(ctx context.Context, userID int, ids []int) (int, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddItems inserts a line per requested product, or bumps the quantity
// of an existing line for the same product. The returned count covers
// inserts only.
func (s *service) AddItems(ctx context.Context, userID int, items []AddItemInput) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Basket"),
		zap.String("method", "AddItems"),
		zap.Int("user_id", userID),
		zap.Int("item_count", len(items)),
	)

	if len(items) == 0 {
		return 0, apperr.Wrap(apperr.KindValidation, ErrEmptyItems.Error(), ErrEmptyItems)
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, apperr.Wrap(apperr.KindValidation, ErrInvalidQuantity.Error(), ErrInvalidQuantity)
		}
		ids = append(ids, item.ProductInfoID)
	}

	existing, err := s.productRepo.FilterExisting(ctx, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if !existing[id] {
			log.Warn("unknown product_info requested", zap.Int("product_info_id", id))
			return 0, apperr.Validationf("unknown product_info: %d", id)
		}
	}

	basketID, err := s.repo.GetOrCreateOpenBasket(ctx, userID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, item := range items {
		lineID, found, err := s.repo.GetLineByProductInfo(ctx, basketID, item.ProductInfoID)
		if err != nil {
			return created, err
		}

		if found {
			if err := s.repo.SetLineQuantity(ctx, lineID, item.Quantity); err != nil {
				return created, err
			}
			continue
		}

		if err := s.repo.CreateLine(ctx, basketID, item.ProductInfoID, item.Quantity); err != nil {
			return created, err
		}
		created++
	}

	log.Info("basket items added", zap.Int("created", created))
	return created, nil
}

// GetItems returns the open basket with computed sums; an empty view
// when the user has no open basket.
func (s *service) GetItems(ctx context.Context, userID int) (*View, error) {
	rows, err := s.repo.GetRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRowsToView(rows), nil
}

// UpdateItems sets quantities by line id. Unknown ids and lines of
// already placed orders are skipped, not errors.
func (s *service) UpdateItems(ctx context.Context, userID int, items []UpdateItemInput) (int, error) {
	if len(items) == 0 {
		return 0, apperr.Wrap(apperr.KindValidation, ErrEmptyItems.Error(), ErrEmptyItems)
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, apperr.Wrap(apperr.KindValidation, ErrInvalidQuantity.Error(), ErrInvalidQuantity)
		}
	}

	updated := 0
	for _, item := range items {
		ok, err := s.repo.UpdateLineQuantity(ctx, userID, item.ID, item.Quantity)
		if err != nil {
			return updated, err
		}
		if ok {
			updated++
		}
	}

	return updated, nil
}

// DeleteItems removes lines by id from the open basket; unknown ids
// are skipped.
func (s *service) DeleteItems(ctx context.Context, userID int, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, apperr.Wrap(apperr.KindValidation, ErrEmptyItems.Error(), ErrEmptyItems)
	}
	return s.repo.DeleteLines(ctx, userID, ids)
}
