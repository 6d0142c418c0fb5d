package repository

import (
	"context"
	"regexp"
	"strings"

	"magasin/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListQuery describes a paginated substring search. Page is 1-indexed;
// Skip computes how many leading matches the page excludes.
type ListQuery struct {
	Page   int64
	Limit  int64
	Search string
}

func (q ListQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

type AdherentRepository interface {
	Create(ctx context.Context, adherent *domain.Adherent) (*domain.Adherent, error)
	GetByID(ctx context.Context, id string) (*domain.Adherent, error)
	Find(ctx context.Context, query ListQuery) ([]domain.Adherent, int64, error)
	Update(ctx context.Context, id string, update domain.AdherentUpdate) (*domain.Adherent, error)
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Find(ctx context.Context, query ListQuery) ([]domain.Product, int64, error)
	Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// searchFilter builds a case-insensitive substring match over the given
// fields. The term is quoted so regex metacharacters in user input are
// matched literally. An empty term matches every document.
func searchFilter(search string, fields ...string) bson.M {
	pattern := regexp.QuoteMeta(search)
	or := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
	}
	return bson.M{"$or": or}
}

// matchesSearch is the in-memory counterpart of searchFilter.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
