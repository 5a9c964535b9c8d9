package contact

import (
	"context"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for shipping contacts.
type Service interface {
	List(ctx context.Context, userID int) ([]*Contact, error)
	Create(ctx context.Context, input CreateContactInput) (*Contact, error)
	Update(ctx context.Context, input UpdateContactInput) error
	Delete(ctx context.Context, userID int, ids []int) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID int) ([]*Contact, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Contact"),
		zap.String("method", "List"),
		zap.Int("user_id", userID),
	)
	log.Info("listing contacts")

	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Create(ctx context.Context, input CreateContactInput) (*Contact, error) {
	if input.City == "" || input.Street == "" || input.Phone == "" {
		return nil, apperr.Validation("city, street and phone are required")
	}
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, input UpdateContactInput) error {
	if input.ContactID == 0 {
		return apperr.Validation("id is required")
	}

	ok, err := s.repo.Update(ctx, input)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("contact not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, userID int, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("items is required")
	}
	return s.repo.DeleteByIDs(ctx, userID, ids)
}
