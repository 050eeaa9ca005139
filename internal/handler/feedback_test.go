package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-compliments/internal/models"
	"campus-compliments/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackService is a mock implementation of the FeedbackService interface
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.Feedback), args.Error(1)
}

func TestFeedbackHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		userAgent      string
		expected       *models.Feedback
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "stored with explicit user agent",
			body:           `{"text":"Love the map","email":"a@illinois.edu","userAgent":"campus-app/1.0"}`,
			expected:       &models.Feedback{Text: "Love the map", Email: "a@illinois.edu", UserAgent: "campus-app/1.0"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "user agent taken from request",
			body:           `{"text":"Love the map"}`,
			userAgent:      "Mozilla/5.0",
			expected:       &models.Feedback{Text: "Love the map", UserAgent: "Mozilla/5.0"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "malformed body",
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:           "validation error",
			body:           `{"text":""}`,
			expected:       &models.Feedback{},
			mockError:      &service.ValidationError{Msg: "feedback text is required"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"feedback text is required"}`,
		},
		{
			name:           "service error",
			body:           `{"text":"Love the map"}`,
			expected:       &models.Feedback{Text: "Love the map"},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockFeedbackService)
			handler := NewFeedbackHandler(mockSvc)
			if tt.expected != nil {
				mockSvc.On("Submit", mock.Anything, *tt.expected).Return(*tt.expected, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("User-Agent", tt.userAgent)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Submit(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
