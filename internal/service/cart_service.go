package service

import (
	"context"
	"fmt"

	"addina-shop/internal/model"
	"addina-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func toCartItemResponse(d model.CartItemDetail) model.CartItemResponse {
	return model.CartItemResponse{
		ID:         d.ID,
		Product:    model.NewProductResponse(d.Product),
		Quantity:   d.Quantity,
		TotalPrice: float64(d.Quantity) * d.Product.Price,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// List retrieves the user's cart with product details.
func (s *cartService) List(ctx context.Context, userID uuid.UUID) ([]model.CartItemResponse, error) {
	details, err := s.cartRepo.GetAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list cart")
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}

	responses := make([]model.CartItemResponse, len(details))
	for i, d := range details {
		responses[i] = toCartItemResponse(d)
	}
	return responses, nil
}

// AddItem upserts a product into the cart.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.CartItemRequest) (*model.CartItem, error) {
	if req == nil || req.ProductID == uuid.Nil {
		return nil, model.NewValidationError("product_id is required")
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	// Validate the product before writing so a bad ID surfaces as a clean
	// 404 rather than a constraint violation.
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID.String()).Msg("failed to validate product")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	item, err := s.cartRepo.Upsert(ctx, userID, req.ProductID, quantity)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", req.ProductID.String()).
		Int("quantity", quantity).
		Msg("cart item added")

	return item, nil
}

// UpdateItem replaces the quantity of an existing cart row.
func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		if err == model.ErrCartItemNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// RemoveItem deletes a cart row.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, userID, itemID); err != nil {
		if err == model.ErrCartItemNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.cartRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Int64("deleted_count", count).
		Msg("cart cleared")

	return count, nil
}

// Total sums quantity × current product price across the cart.
func (s *cartService) Total(ctx context.Context, userID uuid.UUID) (*model.CartTotal, error) {
	details, err := s.cartRepo.GetAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to total cart")
		return nil, fmt.Errorf("failed to total cart: %w", err)
	}

	total := &model.CartTotal{}
	for _, d := range details {
		total.TotalAmount += float64(d.Quantity) * d.Product.Price
		total.TotalItems += d.Quantity
	}

	return total, nil
}
