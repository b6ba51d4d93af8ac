package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/service"
	"github.com/rideboard/trips-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for browsing trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	trips, total, err := h.service.GetTrips(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// GetTrip handles GET /api/v1/trips/:tripId
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.service.GetTripByTripID(c.Param("tripId"))
	if err != nil {
		response.InternalError(c, "Failed to get trip")
		return
	}
	if trip == nil {
		response.NotFound(c, "Trip not found")
		return
	}

	response.Success(c, trip)
}
