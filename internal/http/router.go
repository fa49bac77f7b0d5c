// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/modules/aiusage"
	"tripplanner/internal/modules/itinerary"
)

func NewRouter(planner *itinerary.Service, quota *aiusage.Service, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery())

	tripHandler := handlers.NewTripHandler(planner)
	trips := r.Group("/api/trips", middleware.Quota(quota))
	trips.POST("/plan", tripHandler.Plan)
	trips.POST("/refine", tripHandler.Refine)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
