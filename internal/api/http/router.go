package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/storefront-labs/storefront-service/internal/api/http/handlers"
	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/observability"

	_ "github.com/storefront-labs/storefront-service/docs"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Stores        *handlers.StoresHandler
	Products      *handlers.ProductsHandler
	Orders        *handlers.OrdersHandler
	Reviews       *handlers.ReviewsHandler
	Authenticator *auth.Authenticator
	Metrics       *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Authentication runs for every route
// except the authenticator's allow-list.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Authenticator.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
	app.Get("/favicon.ico", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/v1/api-docs/*", adaptor.HTTPHandler(httpSwagger.Handler(
		httpSwagger.URL("/v1/api-docs/doc.json"),
	)))

	v1 := app.Group("/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refreshToken", cfg.Auth.Refresh)
	authGroup.Post("/logout", auth.RequireRole(domain.RoleAdmin), cfg.Auth.Logout)

	users := v1.Group("/users")
	users.Post("/signup", cfg.Users.Signup)
	users.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/me", auth.RequireAuthenticated(), cfg.Users.Me)

	stores := v1.Group("/stores", auth.RequireAuthenticated())
	stores.Get("/", cfg.Stores.List)
	stores.Post("/", cfg.Stores.Create)
	stores.Get("/:storeId", cfg.Stores.Get)
	stores.Patch("/:storeId", cfg.Stores.Update)
	stores.Delete("/:storeId", cfg.Stores.Delete)
	stores.Get("/:storeId/products", cfg.Products.ListByStore)
	stores.Post("/:storeId/products", cfg.Products.Create)

	products := v1.Group("/products", auth.RequireAuthenticated())
	products.Get("/:productId", cfg.Products.Get)
	products.Patch("/:productId", cfg.Products.Update)
	products.Delete("/:productId", cfg.Products.Delete)
	products.Get("/:productId/reviews", cfg.Reviews.ListByProduct)

	orders := v1.Group("/orders", auth.RequireAuthenticated())
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.Orders.List)
	orders.Get("/mine", cfg.Orders.ListMine)
	orders.Get("/:orderId", cfg.Orders.Get)
	orders.Patch("/:orderId", cfg.Orders.Update)
	orders.Delete("/:orderId", cfg.Orders.Delete)

	reviews := v1.Group("/reviews", auth.RequireAuthenticated())
	reviews.Post("/", cfg.Reviews.Create)
	reviews.Patch("/:reviewId", cfg.Reviews.Update)
	reviews.Delete("/:reviewId", cfg.Reviews.Delete)
}
