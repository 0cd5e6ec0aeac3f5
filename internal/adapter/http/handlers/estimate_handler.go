package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/dto/request"
	"chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/infrastructure/pricing"
	"chromaprint/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler prices custom print jobs for the stub backend.
type EstimateHandler struct {
	engine pricing.Engine
}

func NewEstimateHandler(engine pricing.Engine) *EstimateHandler {
	return &EstimateHandler{engine: engine}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result := h.engine.Estimate(payload.ToInput())
	c.JSON(http.StatusOK, response.FromEstimate(result))
}
