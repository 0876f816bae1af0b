package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/internal/transport"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "cart_add_error", "invalid body", err)
	}

	item, err := h.Svc.Add(ctx, user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return fail(l, "cart_add_error", err)
	}

	l.Info("item added successfully to cart", "item_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.List(ctx, user.ID)
	if err != nil {
		return fail(l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "cart_update_error", "id is not a positive integer", err)
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "cart_update_error", "invalid body", err)
	}

	item, err := h.Svc.Update(ctx, user.ID, id, req.Quantity)
	if err != nil {
		return fail(l, "cart_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "cart_remove_error", "id is not a positive integer", err)
	}

	if err := h.Svc.Remove(ctx, user.ID, id); err != nil {
		return fail(l, "cart_remove_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cleared, err := h.Svc.Checkout(ctx, user.ID)
	if err != nil {
		return fail(l, "cart_checkout_error", err)
	}

	l.Info("cart successfully cleared", "cleared_items", cleared)
	return c.JSON(http.StatusOK, transport.CheckoutResponse{
		Message:      "checkout completed",
		ClearedItems: cleared,
	})
}
