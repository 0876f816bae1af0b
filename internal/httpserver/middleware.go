package httpserver

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

const userContextKey = "user"

// RequireUser resolves the bearer token into a user stored on the echo
// context. Requests without a valid token get 401.
func RequireUser(guard *service.Guard) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  userContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return guard.Authenticate(c.Request().Context(), auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Warn("auth_error", "status", http.StatusUnauthorized, "error", err)
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	})
}

func currentUser(c echo.Context) (*models.User, bool) {
	u, ok := c.Get(userContextKey).(*models.User)
	return u, ok && u != nil
}
