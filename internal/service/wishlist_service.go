package service

import (
	"context"
	"fmt"

	"addina-shop/internal/model"
	"addina-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

// List retrieves the user's wishlist with product details.
func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItemResponse, error) {
	items, products, err := s.wishlistRepo.GetAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list wishlist")
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	responses := make([]model.WishlistItemResponse, len(items))
	for i, item := range items {
		responses[i] = model.WishlistItemResponse{
			ID:        item.ID,
			Product:   model.NewProductResponse(products[i]),
			CreatedAt: item.CreatedAt,
		}
	}
	return responses, nil
}

// AddItem adds a product with get-or-create semantics.
func (s *wishlistService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error) {
	if productID == uuid.Nil {
		return nil, model.NewValidationError("product_id is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to validate product")
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	item, err := s.wishlistRepo.GetOrCreate(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to add wishlist item")
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return item, nil
}

// RemoveItem deletes a wishlist row.
func (s *wishlistService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.wishlistRepo.Delete(ctx, userID, itemID); err != nil {
		if err == model.ErrWishlistNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("wishlist_item_id", itemID.String()).Msg("failed to remove wishlist item")
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}

// Clear empties the wishlist.
func (s *wishlistService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.wishlistRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear wishlist")
		return 0, fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return count, nil
}
