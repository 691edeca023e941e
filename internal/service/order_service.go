package service

import (
	"context"
	"fmt"
	"time"

	"addina-shop/internal/model"
	"addina-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateFromCart converts the user's cart into an order. The whole sequence
// runs in one transaction with the cart rows locked: computing the total,
// creating the order, freezing per-item prices, and clearing the cart are
// visible together or not at all. An empty cart fails with ErrEmptyCart
// before any write, which also makes an accidental double submission fail
// cleanly after the first call succeeds.
func (s *orderService) CreateFromCart(ctx context.Context, userID uuid.UUID) (*model.OrderResponse, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin checkout transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback checkout transaction")
			}
		}
	}()

	lines, err := s.cartRepo.GetForUpdate(ctx, tx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to read cart for checkout")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if len(lines) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	var totalAmount float64
	for _, line := range lines {
		totalAmount += float64(line.Quantity) * line.Price
	}

	now := time.Now()
	order := &model.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Freeze each line's price at the product's current value.
	orderItems := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			CreatedAt: now,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = s.cartRepo.DeleteAllForUserTx(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart during checkout")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit checkout transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID.String()).
		Float64("total_amount", totalAmount).
		Int("item_count", len(orderItems)).
		Msg("order created from cart")

	// Read the order back with product details for the response.
	return s.GetByID(ctx, userID, order.ID)
}

// List retrieves the user's orders newest-first.
func (s *orderService) List(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error) {
	orders, itemsByOrder, err := s.orderRepo.GetAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]model.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o, itemsByOrder[o.ID])
	}
	return responses, nil
}

// GetByID retrieves one of the user's orders.
func (s *orderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, userID, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	resp := toOrderResponse(*order, items)
	return &resp, nil
}

// UpdateStatus moves the order to another status within the fixed set.
func (s *orderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, model.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, userID, orderID, status)
	if err != nil {
		if err == model.ErrOrderNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

func toOrderResponse(order model.Order, items []model.OrderItemDetail) model.OrderResponse {
	resp := model.OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Items:       make([]model.OrderItemResponse, len(items)),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	for i, d := range items {
		resp.Items[i] = model.OrderItemResponse{
			ID:         d.ID,
			Product:    model.NewProductResponse(d.Product),
			Quantity:   d.Quantity,
			Price:      d.Price,
			TotalPrice: float64(d.Quantity) * d.Price,
			CreatedAt:  d.CreatedAt,
		}
		resp.TotalItems += d.Quantity
	}

	return resp
}
