package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/shop_api/internal/models"
)

// Repository implementations report missing rows with repo.ErrNotFound and
// unique violations with repo.ErrConflict. Each call is one transaction.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type ProductRepo interface {
	CreateProduct(ctx context.Context, prod *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	SearchProducts(ctx context.Context, q string) ([]models.Product, error)
}

// CartRepo never exposes an item lookup that is not scoped by its owner.
type CartRepo interface {
	AddCartItem(ctx context.Context, item *models.CartItem) error
	ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error)
	DeleteCartItem(ctx context.Context, userID, itemID uint) error
	ClearCart(ctx context.Context, userID uint) (int64, error)
}

type ProductIndex interface {
	IndexProduct(ctx context.Context, prod models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	SearchProducts(ctx context.Context, q string) ([]models.Product, error)
}

type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
	TTL() time.Duration
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
