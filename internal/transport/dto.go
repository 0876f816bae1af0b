package transport

import "time"

// Credentials is accepted as JSON or as an urlencoded form.
type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type PatchProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutResponse struct {
	Message      string `json:"message"`
	ClearedItems int64  `json:"cleared_items"`
}
