package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rideboard/trips-backend-go/internal/service"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
	"github.com/rideboard/trips-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for the dataset lifecycle
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Refresh handles POST /api/v1/dataset/refresh
func (h *DatasetHandler) Refresh(c *gin.Context) {
	report, err := h.service.Refresh()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, report)
}

// Status handles GET /api/v1/dataset/status
func (h *DatasetHandler) Status(c *gin.Context) {
	status, err := h.service.Status()
	if err != nil {
		if errors.Is(err, snapshot.ErrNotLoaded) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to get dataset status")
		return
	}
	response.Success(c, status)
}

// History handles GET /api/v1/dataset/history
func (h *DatasetHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reports, err := h.service.History(limit)
	if err != nil {
		response.InternalError(c, "Failed to get load history")
		return
	}
	response.Success(c, reports)
}
