package category

import "context"

type Service interface {
	GetCategories(ctx context.Context, limit, page *int32) (*Page, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCategories(ctx context.Context, limit, page *int32) (*Page, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.GetCategories(ctx, limit, page)
	if err != nil {
		return nil, err
	}

	return &Page{Count: count, Results: categories}, nil
}
