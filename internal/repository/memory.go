package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"magasin/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations of the repository interfaces. They enforce
// the same constraints as the Mongo ones (unique adherent email, merge
// update semantics) and pin insertion order, so the service and handler
// layers can be exercised without a running database.

type memoryAdherentRepository struct {
	mu        sync.RWMutex
	adherents []domain.Adherent
}

func NewMemoryAdherentRepository() AdherentRepository {
	return &memoryAdherentRepository{}
}

func (r *memoryAdherentRepository) Create(_ context.Context, adherent *domain.Adherent) (*domain.Adherent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.adherents {
		if existing.Email == adherent.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	if adherent.ID.IsZero() {
		adherent.ID = primitive.NewObjectID()
	}
	if adherent.DateJoined.IsZero() {
		adherent.DateJoined = time.Now().UTC()
	}

	r.adherents = append(r.adherents, *adherent)
	return adherent, nil
}

func (r *memoryAdherentRepository) GetByID(_ context.Context, id string) (*domain.Adherent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, adherent := range r.adherents {
		if adherent.ID == oid {
			found := adherent
			return &found, nil
		}
	}
	return nil, domain.ErrAdherentNotFound
}

func (r *memoryAdherentRepository) Find(_ context.Context, query ListQuery) ([]domain.Adherent, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []domain.Adherent
	for _, adherent := range r.adherents {
		if matchesSearch(query.Search, adherent.Name, adherent.Email) {
			matches = append(matches, adherent)
		}
	}

	count := int64(len(matches))
	return paginate(matches, query), count, nil
}

func (r *memoryAdherentRepository) Update(_ context.Context, id string, update domain.AdherentUpdate) (*domain.Adherent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.adherents {
		if r.adherents[i].ID != oid {
			continue
		}
		if update.Email != nil {
			for j := range r.adherents {
				if j != i && r.adherents[j].Email == *update.Email {
					return nil, domain.ErrDuplicateEmail
				}
			}
			r.adherents[i].Email = *update.Email
		}
		if update.Name != nil {
			r.adherents[i].Name = *update.Name
		}
		updated := r.adherents[i]
		return &updated, nil
	}
	return nil, domain.ErrAdherentNotFound
}

func (r *memoryAdherentRepository) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.adherents {
		if r.adherents[i].ID == oid {
			r.adherents = append(r.adherents[:i], r.adherents[i+1:]...)
			return nil
		}
	}
	return domain.ErrAdherentNotFound
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{}
}

func (r *memoryProductRepository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	r.products = append(r.products, *product)
	return product, nil
}

func (r *memoryProductRepository) Find(_ context.Context, query ListQuery) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []domain.Product
	for _, product := range r.products {
		if matchesSearch(query.Search, product.Name, product.Category) {
			matches = append(matches, product)
		}
	}

	count := int64(len(matches))
	return paginate(matches, query), count, nil
}

func (r *memoryProductRepository) Update(_ context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != oid {
			continue
		}
		if update.Name != nil {
			r.products[i].Name = *update.Name
		}
		if update.Price != nil {
			r.products[i].Price = *update.Price
		}
		if update.Category != nil {
			r.products[i].Category = *update.Category
		}
		if update.Description != nil {
			r.products[i].Description = *update.Description
		}
		updated := r.products[i]
		return &updated, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == oid {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func paginate[T any](matches []T, query ListQuery) []T {
	skip := query.Skip()
	if skip >= int64(len(matches)) {
		return []T{}
	}
	end := skip + query.Limit
	if end > int64(len(matches)) {
		end = int64(len(matches))
	}
	return matches[skip:end]
}
