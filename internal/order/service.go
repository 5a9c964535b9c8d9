package order

import (
	"context"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, params PlaceParams) error
	List(ctx context.Context, userID int) ([]*Order, error)
	PartnerOrders(ctx context.Context, userID int, role string) ([]*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Place moves the basket through the only transition it has:
// basket -> new, with a contact attached. See PlaceTx for atomicity.
func (s *service) Place(ctx context.Context, params PlaceParams) error {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "Place"),
		zap.Int("user_id", params.UserID),
		zap.Int("order_id", params.BasketID),
	)

	if params.BasketID == 0 || params.ContactID == 0 {
		return apperr.Validation("id and contact are required")
	}

	err := s.repo.PlaceTx(ctx, params)
	switch err {
	case nil:
	case ErrContactNotOwned:
		return apperr.Wrap(apperr.KindValidation, err.Error(), err)
	case ErrOrderEmpty:
		return apperr.Wrap(apperr.KindValidation, err.Error(), err)
	case ErrOrderNotFound:
		return apperr.Wrap(apperr.KindNotFound, err.Error(), err)
	default:
		log.Error("place failed", zap.Error(err))
		return err
	}

	log.Info("order placed", zap.Int("contact_id", params.ContactID))
	return nil
}

func (s *service) List(ctx context.Context, userID int) ([]*Order, error) {
	return s.repo.GetOrders(ctx, userID)
}

func (s *service) PartnerOrders(ctx context.Context, userID int, role string) ([]*Order, error) {
	if role != "shop" {
		return nil, apperr.Wrap(apperr.KindPermission, ErrNotAPartner.Error(), ErrNotAPartner)
	}
	return s.repo.GetPartnerOrders(ctx, userID)
}
