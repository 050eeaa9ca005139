package handler

import (
	"net/http"
	"strconv"

	"campus-compliments/internal/matcher"
	"campus-compliments/internal/models"

	"github.com/gin-gonic/gin"
)

// BuildingHandler exposes the building catalog
type BuildingHandler struct {
	service BuildingService
}

// BuildingService interface for dependency injection
type BuildingService interface {
	List() []models.Building
	Match(address string) (models.Building, bool)
	Rank(address string) []matcher.Candidate
	Search(query string, limit int) []models.Building
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(svc BuildingService) *BuildingHandler {
	return &BuildingHandler{service: svc}
}

// BuildingList is the catalog response body.
type BuildingList struct {
	Buildings []models.Building `json:"buildings"`
}

// List handles GET /api/buildings requests
//
//	@Summary	List the building catalog
//	@Tags		buildings
//	@Produce	json
//	@Success	200	{object}	BuildingList
//	@Router		/buildings [get]
func (h *BuildingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, BuildingList{Buildings: h.service.List()})
}

// Match handles GET /api/buildings/match requests
//
//	@Summary	Resolve a geocoded address to a building
//	@Tags		buildings
//	@Produce	json
//	@Param		address	query		string	true	"free-text address"
//	@Success	200		{object}	models.Building
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/buildings/match [get]
func (h *BuildingHandler) Match(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'address'"})
		return
	}

	building, ok := h.service.Match(address)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching building"})
		return
	}

	c.JSON(http.StatusOK, building)
}

// Rank handles GET /api/buildings/rank requests
//
//	@Summary	Score every building against an address
//	@Tags		buildings
//	@Produce	json
//	@Param		address	query	string	true	"free-text address"
//	@Success	200		{array}	matcher.Candidate
//	@Failure	400		{object}	ErrorResponse
//	@Router		/buildings/rank [get]
func (h *BuildingHandler) Rank(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'address'"})
		return
	}

	candidates := h.service.Rank(address)
	if candidates == nil {
		candidates = []matcher.Candidate{}
	}
	c.JSON(http.StatusOK, candidates)
}

// Search handles GET /api/buildings/search requests
//
//	@Summary	Fuzzy search building names
//	@Tags		buildings
//	@Produce	json
//	@Param		q		query		string	true	"name fragment"
//	@Param		limit	query		int		false	"maximum results (default 10)"
//	@Success	200		{object}	BuildingList
//	@Failure	400		{object}	ErrorResponse
//	@Router		/buildings/search [get]
func (h *BuildingHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, BuildingList{Buildings: h.service.Search(query, limit)})
}
