package gym

import (
	"context"
	"errors"
)

var ErrWrongTenant = errors.New("gym belongs to a different tenant")

type Service interface {
	GetGym(ctx context.Context, id int) (*Gym, error)
	GetGymBySlug(ctx context.Context, slug string) (*Gym, error)
	ListGyms(ctx context.Context, tenantID int) ([]Gym, error)
	UpdateGym(ctx context.Context, tenantID, id int, params UpdateGymParams) (*Gym, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetGym(ctx context.Context, id int) (*Gym, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) ListGyms(ctx context.Context, tenantID int) ([]Gym, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) UpdateGym(ctx context.Context, tenantID, id int, params UpdateGymParams) (*Gym, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.TenantID != tenantID {
		return nil, ErrWrongTenant
	}

	return s.repo.Update(ctx, id, params)
}
