package partner

import (
	"context"
	"errors"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Import(ctx context.Context, userID int, role, url string) error
}

type service struct {
	fetcher Fetcher
	repo    Repository
}

func NewService(fetcher Fetcher, repo Repository) Service {
	return &service{fetcher: fetcher, repo: repo}
}

// Import fetches the price list at url and swaps it in as the
// partner's catalog.
func (s *service) Import(ctx context.Context, userID int, role, url string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Partner"),
		zap.String("method", "Import"),
		zap.Int("user_id", userID),
	)

	if role != "shop" {
		return apperr.Wrap(apperr.KindPermission, ErrNotAPartner.Error(), ErrNotAPartner)
	}
	if url == "" {
		return apperr.Validation("url is required")
	}

	pl, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadURL), errors.Is(err, ErrBadPriceList):
			return apperr.Wrap(apperr.KindValidation, err.Error(), err)
		case errors.Is(err, ErrFetchFailed):
			return apperr.Wrap(apperr.KindValidation, err.Error(), err)
		default:
			return err
		}
	}

	if pl.Shop == "" {
		return apperr.Validation("price list has no shop name")
	}

	err = s.repo.ImportPriceList(ctx, userID, pl)
	switch {
	case err == nil:
	case errors.Is(err, ErrShopTaken):
		return apperr.Wrap(apperr.KindPermission, ErrShopTaken.Error(), err)
	case errors.Is(err, ErrUnknownGoodCat):
		return apperr.Wrap(apperr.KindValidation, err.Error(), err)
	default:
		log.Error("import failed", zap.Error(err))
		return err
	}

	return nil
}
