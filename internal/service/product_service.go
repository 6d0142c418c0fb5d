package service

import (
	"context"
	"fmt"

	"magasin/internal/domain"
	"magasin/internal/repository"
)

type ProductList struct {
	Products   []domain.Product
	TotalPages int64
	Page       int64
}

// CreateProductInput is the field set of a product creation request.
// Image holds the stored attachment filename, empty when no file was
// uploaded.
type CreateProductInput struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Image       string
}

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

func (s *ProductService) List(ctx context.Context, query repository.ListQuery) (*ProductList, error) {
	query = normalize(query)

	products, count, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	return &ProductList{
		Products:   products,
		TotalPages: totalPages(count, query.Limit),
		Page:       query.Page,
	}, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	return s.repo.Update(ctx, id, update)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
