package exercise

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, e *Exercise) error {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Category) == "" {
		return ErrInvalidExercise
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) List(ctx context.Context, f Filter, limit, offset int) ([]*Exercise, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}
