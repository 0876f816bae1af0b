package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

const defaultQuantity = 1

// CartService operates on the cart of one user at a time. An item that
// belongs to somebody else is reported as not found.
type CartService struct {
	Repo   CartRepo
	Events events.Publisher
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}
	return nil
}

func (s *CartService) Add(ctx context.Context, userID, productID uint, quantity *int) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add", "user_id", userID)

	if productID == 0 {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	qty := defaultQuantity
	if quantity != nil {
		qty = *quantity
	}
	if err := validateQuantity(qty); err != nil {
		return nil, err
	}

	item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.Repo.AddCartItem(ctx, item); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		l.Error("cart_add_error", "status", 500, "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCart, idKey(userID), map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"item_id":    item.ID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
	return item, nil
}

func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.ListCartItems(ctx, userID)
}

func (s *CartService) Update(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.update", "user_id", userID, "item_id", itemID)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	item, err := s.Repo.UpdateCartItem(ctx, userID, itemID, quantity)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCartItemNotFound
		}
		l.Error("cart_update_error", "status", 500, "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCart, idKey(userID), map[string]any{
		"type":     "cart_item_updated",
		"user_id":  userID,
		"item_id":  item.ID,
		"quantity": item.Quantity,
	})
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	l := logging.FromContext(ctx).With("svc", "cart.remove", "user_id", userID, "item_id", itemID)

	if err := s.Repo.DeleteCartItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCartItemNotFound
		}
		l.Error("cart_remove_error", "status", 500, "error", err)
		return err
	}

	publish(ctx, s.Events, events.TopicCart, idKey(userID), map[string]any{
		"type":    "cart_item_removed",
		"user_id": userID,
		"item_id": itemID,
	})
	return nil
}

// Checkout empties the cart and reports how many lines were removed. There
// is no order or payment step.
func (s *CartService) Checkout(ctx context.Context, userID uint) (int64, error) {
	l := logging.FromContext(ctx).With("svc", "cart.checkout", "user_id", userID)

	cleared, err := s.Repo.ClearCart(ctx, userID)
	if err != nil {
		l.Error("cart_checkout_error", "status", 500, "error", err)
		return 0, err
	}

	publish(ctx, s.Events, events.TopicCart, idKey(userID), map[string]any{
		"type":          "cart_checked_out",
		"user_id":       userID,
		"cleared_items": cleared,
	})
	return cleared, nil
}
