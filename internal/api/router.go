package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rideboard/trips-backend-go/internal/config"
	"github.com/rideboard/trips-backend-go/internal/handler"
	"github.com/rideboard/trips-backend-go/internal/middleware"
)

// Handlers groups the handlers the router wires up
type Handlers struct {
	Evaluate *handler.EvaluateHandler
	Trip     *handler.TripHandler
	Location *handler.LocationHandler
	Dataset  *handler.DatasetHandler
}

// SetupRouter configures the gin engine and routes
func SetupRouter(cfg *config.Config, log *logrus.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trips Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// Metric evaluation
		api.GET("/evaluate", h.Evaluate.Evaluate)
		api.GET("/metrics", h.Evaluate.ListMetrics)

		// Fact table browse
		trips := api.Group("/trips")
		{
			trips.GET("", h.Trip.GetTrips)
			trips.GET("/:tripId", h.Trip.GetTrip)
		}

		// Dimension tables
		locations := api.Group("/locations")
		{
			locations.GET("", h.Location.GetLocations)
			locations.GET("/cities", h.Location.GetCities)
		}
		api.GET("/calendar", h.Location.GetCalendar)

		// Dataset lifecycle
		dataset := api.Group("/dataset")
		{
			dataset.GET("/status", h.Dataset.Status)
			dataset.GET("/history", h.Dataset.History)
			dataset.POST("/refresh", middleware.AuthRequired(cfg.JWTSecret), h.Dataset.Refresh)
		}
	}

	return r
}
