package product

import "context"

type Service interface {
	GetProducts(ctx context.Context, filter Filter) ([]*ProductInfo, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context, filter Filter) ([]*ProductInfo, error) {
	return s.repo.GetProducts(ctx, filter)
}
