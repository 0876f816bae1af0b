package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	pkgdb "github.com/Skotchmaster/shop_api/pkg/db"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

func live(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func ready(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := pkgdb.Ping(ctx, db); err != nil {
			logging.FromContext(ctx).Error("ready_check_failed", "status", http.StatusServiceUnavailable, "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
