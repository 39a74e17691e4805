package menu

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAll(ctx context.Context) ([]Item, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Create(ctx context.Context, fields ItemFields) (Item, error) {
	return s.repo.Create(ctx, fields)
}

func (s *Service) Update(ctx context.Context, id int, fields ItemFields) (Item, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) UpdateImage(ctx context.Context, id int, imageURL string) error {
	return s.repo.UpdateImage(ctx, id, imageURL)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
