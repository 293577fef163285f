// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"platefinder/internal/http/handlers"
	"platefinder/internal/http/middleware"
)

// NewRouter wires the gin engine, middleware and CORS for browser clients.
func NewRouter(
	restaurantHandler *handlers.RestaurantHandler,
	conciergeHandler *handlers.ConciergeHandler,
	logger zerolog.Logger,
) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(logger), middleware.Recovery(logger))

	api := r.Group("/api")
	api.GET("/restaurants", restaurantHandler.List)
	api.POST("/concierge", conciergeHandler.Recommend)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	return corsHandler.Handler(r)
}
