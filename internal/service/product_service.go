package service

import (
	"context"
	"fmt"

	"addina-shop/internal/model"
	"addina-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

func toProductResponses(products []model.Product) []model.ProductResponse {
	responses := make([]model.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = model.NewProductResponse(p)
	}
	return responses
}

// GetAll retrieves products newest-first with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.ProductResponse, error) {
	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return toProductResponses(products), nil
}

// GetFeatured retrieves products flagged as new.
func (s *productService) GetFeatured(ctx context.Context) ([]model.ProductResponse, error) {
	products, err := s.repo.GetFeatured(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get featured products")
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	return toProductResponses(products), nil
}

// GetByID retrieves a single product.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	resp := model.NewProductResponse(*product)
	return &resp, nil
}
