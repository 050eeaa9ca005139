package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-compliments/internal/models"
	"campus-compliments/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockComplimentService is a mock implementation of the ComplimentService interface
type MockComplimentService struct {
	mock.Mock
}

func (m *MockComplimentService) List(ctx context.Context, filter models.ComplimentFilter) ([]models.Compliment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Compliment), args.Error(1)
}

func (m *MockComplimentService) Create(ctx context.Context, in models.NewCompliment) (models.Compliment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Compliment), args.Error(1)
}

func (m *MockComplimentService) Like(ctx context.Context, id string, like bool) (int, error) {
	args := m.Called(ctx, id, like)
	return args.Int(0), args.Error(1)
}

func (m *MockComplimentService) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

var sampleCompliment = models.Compliment{
	ID:           "4b1f3b52-98a4-4f6e-9d0c-2f0a6d4b7e11",
	BuildingCode: "0001",
	BuildingName: "Davenport Hall",
	Text:         "Great study spot",
	Coordinates:  models.Coordinates{-88.2262, 40.1074},
	Timestamp:    time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
	Likes:        2,
}

var sampleComplimentJSON = map[string]interface{}{
	"_id":          "4b1f3b52-98a4-4f6e-9d0c-2f0a6d4b7e11",
	"buildingCode": "0001",
	"buildingName": "Davenport Hall",
	"text":         "Great study spot",
	"coordinates":  []interface{}{-88.2262, 40.1074},
	"timestamp":    "2026-03-04T12:00:00Z",
	"likes":        float64(2),
}

func TestComplimentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		rawQuery       string
		filter         models.ComplimentFilter
		mockResult     []models.Compliment
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "all compliments",
			filter:         models.ComplimentFilter{},
			mockResult:     []models.Compliment{sampleCompliment},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"compliments": []interface{}{sampleComplimentJSON}},
		},
		{
			name:           "filters passed through",
			rawQuery:       "q=study&building=0001",
			filter:         models.ComplimentFilter{Query: "study", BuildingCode: "0001"},
			mockResult:     []models.Compliment{},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"compliments": []interface{}{}},
		},
		{
			name:           "service error",
			filter:         models.ComplimentFilter{},
			mockResult:     nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockComplimentService)
			handler := NewComplimentHandler(mockSvc)
			mockSvc.On("List", mock.Anything, tt.filter).Return(tt.mockResult, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/compliments?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.List(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var actualBody interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestComplimentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	input := models.NewCompliment{
		BuildingCode: "0001",
		BuildingName: "Davenport Hall",
		Text:         "Great study spot",
		Coordinates:  &models.Coordinates{-88.2262, 40.1074},
	}

	tests := []struct {
		name           string
		body           string
		callService    bool
		mockResult     models.Compliment
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "created",
			body:           `{"buildingCode":"0001","buildingName":"Davenport Hall","text":"Great study spot","coordinates":[-88.2262,40.1074]}`,
			callService:    true,
			mockResult:     sampleCompliment,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"success":    true,
				"_id":        sampleCompliment.ID,
				"compliment": sampleComplimentJSON,
			},
		},
		{
			name:           "malformed body",
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid request body"},
		},
		{
			name:           "validation error",
			body:           `{"buildingCode":"0001","buildingName":"Davenport Hall","text":"Great study spot","coordinates":[-88.2262,40.1074]}`,
			callService:    true,
			mockError:      &service.ValidationError{Msg: "compliment text is required"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "compliment text is required"},
		},
		{
			name:           "service error",
			body:           `{"buildingCode":"0001","buildingName":"Davenport Hall","text":"Great study spot","coordinates":[-88.2262,40.1074]}`,
			callService:    true,
			mockError:      fmt.Errorf("insert: %w", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockComplimentService)
			handler := NewComplimentHandler(mockSvc)
			if tt.callService {
				mockSvc.On("Create", mock.Anything, input).Return(tt.mockResult, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/compliments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var actualBody interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestComplimentHandler_CreateCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		coordinates    string
		callService    bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "field missing",
			callService:    true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "coordinates must be [longitude, latitude]"},
		},
		{
			name:           "single value",
			coordinates:    `,"coordinates":[-88.2]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid request body"},
		},
		{
			name:           "three values",
			coordinates:    `,"coordinates":[1,2,3]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockComplimentService)
			handler := NewComplimentHandler(mockSvc)
			if tt.callService {
				mockSvc.On("Create", mock.Anything, models.NewCompliment{BuildingName: "Quad", Text: "hi"}).
					Return(models.Compliment{}, &service.ValidationError{Msg: "coordinates must be [longitude, latitude]"})
			}

			body := `{"buildingName":"Quad","text":"hi"` + tt.coordinates + `}`
			req := httptest.NewRequest(http.MethodPost, "/api/compliments", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var actualBody interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			if tt.callService {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestComplimentHandler_Like(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const id = "4b1f3b52-98a4-4f6e-9d0c-2f0a6d4b7e11"

	tests := []struct {
		name           string
		id             string
		body           string
		callService    bool
		like           bool
		mockLikes      int
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "empty body likes",
			id:             id,
			callService:    true,
			like:           true,
			mockLikes:      3,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true, "likes": float64(3)},
		},
		{
			name:           "explicit unlike",
			id:             id,
			body:           `{"like":false}`,
			callService:    true,
			like:           false,
			mockLikes:      1,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true, "likes": float64(1)},
		},
		{
			name:           "missing field likes",
			id:             id,
			body:           `{}`,
			callService:    true,
			like:           true,
			mockLikes:      4,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true, "likes": float64(4)},
		},
		{
			name:           "malformed body",
			id:             id,
			body:           `{"like":"yes"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid request body"},
		},
		{
			name:           "invalid id",
			id:             "not-a-uuid",
			callService:    true,
			like:           true,
			mockError:      service.ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid compliment id"},
		},
		{
			name:           "unknown id",
			id:             id,
			callService:    true,
			like:           true,
			mockError:      service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "compliment not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockComplimentService)
			handler := NewComplimentHandler(mockSvc)
			if tt.callService {
				mockSvc.On("Like", mock.Anything, tt.id, tt.like).Return(tt.mockLikes, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/compliments/"+tt.id+"/like", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.Like(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var actualBody interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestComplimentHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockComplimentService)
	handler := NewComplimentHandler(mockSvc)
	mockSvc.On("Stats", mock.Anything).Return(models.Stats{TotalCompliments: 12, ActiveLocations: 4, TodayCompliments: 3}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/stats", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalCompliments":12,"activeLocations":4,"todayCompliments":3}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}
