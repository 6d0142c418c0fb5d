package service

import (
	"context"
	"fmt"

	"magasin/internal/domain"
	"magasin/internal/repository"
)

const (
	DefaultPage = 1
	// DefaultLimit is deliberately tiny; existing clients rely on it.
	DefaultLimit = 2
)

// AdherentList is one page of search results plus the total page count
// computed over every match, not just the returned slice.
type AdherentList struct {
	Adherents  []domain.Adherent
	TotalPages int64
	Page       int64
}

type AdherentService struct {
	repo repository.AdherentRepository
}

func NewAdherentService(repo repository.AdherentRepository) *AdherentService {
	return &AdherentService{repo: repo}
}

func (s *AdherentService) Create(ctx context.Context, name, email string) (*domain.Adherent, error) {
	adherent := &domain.Adherent{
		Name:  name,
		Email: email,
	}
	if err := adherent.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, adherent)
	if err != nil {
		return nil, fmt.Errorf("failed to create adherent: %w", err)
	}

	return created, nil
}

func (s *AdherentService) Get(ctx context.Context, id string) (*domain.Adherent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdherentService) List(ctx context.Context, query repository.ListQuery) (*AdherentList, error) {
	query = normalize(query)

	adherents, count, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list adherents: %w", err)
	}
	if adherents == nil {
		adherents = []domain.Adherent{}
	}

	return &AdherentList{
		Adherents:  adherents,
		TotalPages: totalPages(count, query.Limit),
		Page:       query.Page,
	}, nil
}

func (s *AdherentService) Update(ctx context.Context, id string, update domain.AdherentUpdate) (*domain.Adherent, error) {
	return s.repo.Update(ctx, id, update)
}

func (s *AdherentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalize(query repository.ListQuery) repository.ListQuery {
	if query.Page < 1 {
		query.Page = DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = DefaultLimit
	}
	return query
}

func totalPages(count, limit int64) int64 {
	return (count + limit - 1) / limit
}
