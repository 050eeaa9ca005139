package handler

import (
	"context"
	"net/http"
	"strconv"

	"campus-compliments/internal/models"

	"github.com/gin-gonic/gin"
)

// LocateHandler handles pin placement requests
type LocateHandler struct {
	service LocateService
}

// LocateService interface for dependency injection
type LocateService interface {
	Locate(ctx context.Context, lat, lng float64) (models.Placement, error)
}

// NewLocateHandler creates a new locate handler
func NewLocateHandler(svc LocateService) *LocateHandler {
	return &LocateHandler{service: svc}
}

// Locate handles GET /api/locate requests
//
//	@Summary	Identify the building at a coordinate
//	@Tags		buildings
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lng	query		number	true	"longitude"
//	@Success	200	{object}	models.Placement
//	@Failure	400	{object}	ErrorResponse
//	@Router		/locate [get]
func (h *LocateHandler) Locate(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lng'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	placement, err := h.service.Locate(c.Request.Context(), lat, lng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, placement)
}
