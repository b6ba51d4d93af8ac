package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rideboard/trips-backend-go/internal/service"
	"github.com/rideboard/trips-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for the dimension tables
type LocationHandler struct {
	service *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// GetLocations handles GET /api/v1/locations
func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.service.GetLocations(c.Query("city"))
	if err != nil {
		response.InternalError(c, "Failed to get locations")
		return
	}
	response.Success(c, locations)
}

// GetCities handles GET /api/v1/locations/cities
func (h *LocationHandler) GetCities(c *gin.Context) {
	cities, err := h.service.GetCities()
	if err != nil {
		response.InternalError(c, "Failed to get cities")
		return
	}
	response.Success(c, cities)
}

// GetCalendar handles GET /api/v1/calendar
func (h *LocationHandler) GetCalendar(c *gin.Context) {
	days, err := h.service.GetCalendar(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, days)
}
