package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"campus-compliments/internal/models"

	"github.com/gin-gonic/gin"
)

// ComplimentHandler handles the compliment feed
type ComplimentHandler struct {
	service ComplimentService
}

// ComplimentService interface for dependency injection
type ComplimentService interface {
	List(context.Context, models.ComplimentFilter) ([]models.Compliment, error)
	Create(context.Context, models.NewCompliment) (models.Compliment, error)
	Like(ctx context.Context, id string, like bool) (int, error)
	Stats(context.Context) (models.Stats, error)
}

// NewComplimentHandler creates a new compliment handler
func NewComplimentHandler(svc ComplimentService) *ComplimentHandler {
	return &ComplimentHandler{service: svc}
}

// ComplimentList is the feed response body.
type ComplimentList struct {
	Compliments []models.Compliment `json:"compliments"`
}

// CreatedCompliment is the response body of a successful create.
type CreatedCompliment struct {
	Success    bool              `json:"success"`
	ID         string            `json:"_id"`
	Compliment models.Compliment `json:"compliment"`
}

// LikeRequest toggles a like. A missing body or field means like.
type LikeRequest struct {
	Like *bool `json:"like"`
}

// LikeResponse reports the like count after the update.
type LikeResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
}

// List handles GET /api/compliments requests
//
//	@Summary	List compliments, newest first
//	@Tags		compliments
//	@Produce	json
//	@Param		q			query		string	false	"filter on text or building name"
//	@Param		building	query		string	false	"filter on building code"
//	@Success	200			{object}	ComplimentList
//	@Failure	500			{object}	ErrorResponse
//	@Router		/compliments [get]
func (h *ComplimentHandler) List(c *gin.Context) {
	filter := models.ComplimentFilter{
		Query:        c.Query("q"),
		BuildingCode: c.Query("building"),
	}

	compliments, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ComplimentList{Compliments: compliments})
}

// Create handles POST /api/compliments requests
//
//	@Summary	Post a compliment
//	@Tags		compliments
//	@Accept		json
//	@Produce	json
//	@Param		compliment	body		models.NewCompliment	true	"compliment"
//	@Success	200			{object}	CreatedCompliment
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/compliments [post]
func (h *ComplimentHandler) Create(c *gin.Context) {
	var req models.NewCompliment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	compliment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatedCompliment{Success: true, ID: compliment.ID, Compliment: compliment})
}

// Like handles POST /api/compliments/:id/like requests
//
//	@Summary	Like or unlike a compliment
//	@Tags		compliments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"compliment id"
//	@Param		like	body		LikeRequest	false	"like (default) or unlike"
//	@Success	200		{object}	LikeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/compliments/{id}/like [post]
func (h *ComplimentHandler) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	like := req.Like == nil || *req.Like

	likes, err := h.service.Like(c.Request.Context(), c.Param("id"), like)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Success: true, Likes: likes})
}

// Stats handles GET /api/stats requests
//
//	@Summary	Feed statistics
//	@Tags		compliments
//	@Produce	json
//	@Success	200	{object}	models.Stats
//	@Failure	500	{object}	ErrorResponse
//	@Router		/stats [get]
func (h *ComplimentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
