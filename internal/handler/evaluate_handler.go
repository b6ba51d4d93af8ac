package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rideboard/trips-backend-go/internal/analytics"
	"github.com/rideboard/trips-backend-go/internal/metrics"
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/service"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
	"github.com/rideboard/trips-backend-go/pkg/response"
)

// EvaluateHandler handles HTTP requests for metric evaluation
type EvaluateHandler struct {
	service *service.EvaluateService
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(service *service.EvaluateService) *EvaluateHandler {
	return &EvaluateHandler{service: service}
}

// Evaluate handles GET /api/v1/evaluate?metric=...&startDate=...
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var filter models.EvaluateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.Evaluate(c.Query("metric"), filter)
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrNotLoaded):
			response.ServiceUnavailable(c, err.Error())
		case errors.Is(err, metrics.ErrUnknownMetric):
			response.NotFound(c, err.Error())
		case errors.Is(err, analytics.ErrAmbiguousResult):
			response.Conflict(c, "ambiguous result: "+err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, result)
}

// ListMetrics handles GET /api/v1/metrics
func (h *EvaluateHandler) ListMetrics(c *gin.Context) {
	response.Success(c, h.service.ListMetrics())
}
