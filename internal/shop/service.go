package shop

import (
	"context"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Shop, error)
	GetState(ctx context.Context, userID int, role string) (*StateView, error)
	SetState(ctx context.Context, userID int, role, state string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Shop, error) {
	return s.repo.List(ctx)
}

func (s *service) GetState(ctx context.Context, userID int, role string) (*StateView, error) {
	if role != "shop" {
		return nil, apperr.Wrap(apperr.KindPermission, ErrNotAPartner.Error(), ErrNotAPartner)
	}

	sh, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, apperr.Wrap(apperr.KindNotFound, ErrShopNotFound.Error(), ErrShopNotFound)
	}

	return &StateView{Name: sh.Name, State: sh.State}, nil
}

func (s *service) SetState(ctx context.Context, userID int, role, state string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Shop"),
		zap.String("method", "SetState"),
		zap.Int("user_id", userID),
		zap.String("state", state),
	)

	if role != "shop" {
		return apperr.Wrap(apperr.KindPermission, ErrNotAPartner.Error(), ErrNotAPartner)
	}

	var value bool
	switch state {
	case "on":
		value = true
	case "off":
		value = false
	default:
		return apperr.Wrap(apperr.KindValidation, ErrBadState.Error(), ErrBadState)
	}

	ok, err := s.repo.SetState(ctx, userID, value)
	if err != nil {
		log.Error("failed to set state", zap.Error(err))
		return err
	}
	if !ok {
		return apperr.Wrap(apperr.KindNotFound, ErrShopNotFound.Error(), ErrShopNotFound)
	}

	log.Info("partner state changed", zap.Bool("value", value))
	return nil
}
