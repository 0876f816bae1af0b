package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/service"
)

type Deps struct {
	DB      *gorm.DB
	Guard   *service.Guard
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Cart    *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", live)
	e.GET("/health/ready", ready(d.DB))

	requireUser := RequireUser(d.Guard)

	e.POST("/register", d.Auth.Register)
	e.POST("/token", d.Auth.Login)
	e.POST("/login", d.Auth.Login)

	me := e.Group("/users/me", requireUser)
	me.PUT("", d.Auth.UpdateMe)
	me.DELETE("", d.Auth.DeleteMe)

	products := e.Group("/products")
	products.POST("", d.Catalog.CreateProduct)
	products.GET("", d.Catalog.ListProducts)
	products.GET("/search", d.Catalog.SearchProducts)
	products.GET("/:id", d.Catalog.GetProduct)
	products.PUT("/:id", d.Catalog.UpdateProduct, requireUser)
	products.DELETE("/:id", d.Catalog.DeleteProduct, requireUser)

	cart := e.Group("/cart", requireUser)
	cart.POST("", d.Cart.AddToCart)
	cart.GET("", d.Cart.GetCart)
	cart.POST("/checkout", d.Cart.Checkout)
	cart.PUT("/:id", d.Cart.UpdateCartItem)
	cart.DELETE("/:id", d.Cart.RemoveCartItem)
}
