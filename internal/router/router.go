package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/holbertonschool/hbnb/internal/config"
	"github.com/holbertonschool/hbnb/internal/handler"    // import the handlers that implement business logic
	"github.com/holbertonschool/hbnb/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the router needs so callers wire the
// whole API with one call.
type Handlers struct {
	Auth    *handler.AuthHandler
	Users   *handler.UserHandler
	Places  *handler.PlaceHandler
	Reviews *handler.ReviewHandler
	Amenity *handler.AmenityHandler
	Admin   *handler.AdminHandler
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the full HBnB surface: public browse endpoints,
// authenticated write endpoints behind the JWT middleware, and the
// admin-only group behind the admin check. When rdb is non-nil the
// public GET endpoints additionally get a Redis response cache and a
// token-bucket rate limit.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	// Public browse group. Reads are open to guests so the listing and
	// detail pages work without a session.
	pub := e.Group("/v1")
	if rdb != nil {
		pub.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		pub.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	pub.POST("/auth/login", h.Auth.Login)
	pub.POST("/users", h.Users.Register)
	pub.GET("/users", h.Users.List)
	pub.GET("/users/:id", h.Users.Get)
	pub.GET("/places", h.Places.List)
	pub.GET("/places/:id", h.Places.Get)
	pub.GET("/places/:id/reviews", h.Reviews.ListByPlace)
	pub.GET("/amenities", h.Amenity.List)
	pub.GET("/amenities/:id", h.Amenity.Get)
	pub.GET("/reviews", h.Reviews.List)
	pub.GET("/reviews/:id", h.Reviews.Get)

	// Authenticated group. Every handler registered here runs the
	// JWTAuth middleware first, so the caller's id and admin flag are
	// always present in the request context.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", h.Auth.Me)
	auth.PUT("/users/:id", h.Users.Update)
	auth.POST("/places", h.Places.Create)
	auth.PUT("/places/:id", h.Places.Update)
	auth.DELETE("/places/:id", h.Places.Delete)
	auth.POST("/reviews", h.Reviews.Create)
	auth.PUT("/reviews/:id", h.Reviews.Update)
	auth.DELETE("/reviews/:id", h.Reviews.Delete)

	// Admin group. Amenity writes and privileged user management live
	// here; RequireAdmin rejects any caller without the admin flag.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	admin.POST("/amenities", h.Amenity.Create)
	admin.PUT("/amenities/:id", h.Amenity.Update)
	admin.DELETE("/amenities/:id", h.Amenity.Delete)
	admin.POST("/admin/users", h.Admin.CreateUser)
	admin.PUT("/admin/users/:id", h.Admin.UpdateUser)
	admin.DELETE("/admin/users/:id", h.Admin.DeleteUser)
}
