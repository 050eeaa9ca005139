package handler

import (
	"context"
	"net/http"

	"campus-compliments/internal/models"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback submissions
type FeedbackHandler struct {
	service FeedbackService
}

// FeedbackService interface for dependency injection
type FeedbackService interface {
	Submit(context.Context, models.Feedback) (models.Feedback, error)
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// FeedbackRequest is the body of POST /api/feedback.
type FeedbackRequest struct {
	Text      string `json:"text"`
	Email     string `json:"email"`
	UserAgent string `json:"userAgent"`
}

// SuccessResponse acknowledges a write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Submit handles POST /api/feedback requests
//
//	@Summary	Send feedback about the app
//	@Tags		feedback
//	@Accept		json
//	@Produce	json
//	@Param		feedback	body		FeedbackRequest	true	"feedback"
//	@Success	200			{object}	SuccessResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	_, err := h.service.Submit(c.Request.Context(), models.Feedback{
		Text:      req.Text,
		Email:     req.Email,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
