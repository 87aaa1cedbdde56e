package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/orders"
	"storefront/internal/handler/products"
	"storefront/internal/handler/users"
	"storefront/internal/middleware"
	"storefront/internal/worker"
)

// SetupAuth registers the auth service routes: credential issuance plus the
// admin-only user management.
func SetupAuth(e *echo.Echo, db database.DB) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, nil))

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	apiUsers := api.Group("/users", middleware.RequireAdmin(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))
}

// SetupProduct registers the catalog routes. Reads are public; writes sit
// behind the admin gate and invalidate the redis catalog cache through the
// worker pool.
func SetupProduct(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, catalogTTL time.Duration) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	api.GET("/products", products.ListProductsHandler(db, rdb, catalogTTL))
	api.GET("/products/:id", products.GetProductHandler(db))

	admin := api.Group("/products", middleware.RequireAdmin(db))
	admin.POST("", products.CreateProductHandler(db, rdb, wp))
	admin.PUT("/:id", products.UpdateProductHandler(db, rdb, wp))
	admin.DELETE("/:id", products.DeleteProductHandler(db, rdb, wp))
}

// SetupOrder registers the order routes. Every route requires a verified
// token; listing all orders and marking delivery require the admin gate.
// The /myorders route must be registered before /:id so echo does not treat
// "myorders" as an id.
func SetupOrder(e *echo.Echo, db database.DB) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, nil))

	api.POST("/orders", orders.CreateOrderHandler(db), middleware.RequireAuth)
	api.GET("/orders/myorders", orders.ListMyOrdersHandler(db), middleware.RequireAuth)
	api.GET("/orders/:id", orders.GetOrderHandler(db), middleware.RequireAuth)
	api.GET("/orders", orders.ListAllOrdersHandler(db), middleware.RequireAdmin(db))
	api.PUT("/orders/:id/deliver", orders.DeliverOrderHandler(db), middleware.RequireAdmin(db))
}
