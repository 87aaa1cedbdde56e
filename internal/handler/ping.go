package handler

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingResponse is the health check reply.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports whether the service can reach its database, and its
// cache when it has one (rdb may be nil).
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if rdb != nil {
			// A missing key is a healthy reply; only transport errors count.
			if err := rdb.Get(c.Request().Context(), "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
