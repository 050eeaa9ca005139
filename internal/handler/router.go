package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"campus-compliments/internal/logger"
	"campus-compliments/internal/metrics"
	"campus-compliments/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Compliments *ComplimentHandler
	Feedback    *FeedbackHandler
	Locate      *LocateHandler
	Buildings   *BuildingHandler
}

// RouterOptions configures the non-API parts of the router.
type RouterOptions struct {
	Logger       zerolog.Logger
	StaticDir    string
	RateLimitQPS int
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Access(opts.Logger))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(opts.RateLimitQPS))
	{
		api.GET("/health", h.Health.Health)

		api.GET("/compliments", h.Compliments.List)
		api.POST("/compliments", h.Compliments.Create)
		api.POST("/compliments/:id/like", h.Compliments.Like)
		api.GET("/stats", h.Compliments.Stats)

		api.POST("/feedback", h.Feedback.Submit)
		api.GET("/locate", h.Locate.Locate)

		api.GET("/buildings", h.Buildings.List)
		api.GET("/buildings/match", h.Buildings.Match)
		api.GET("/buildings/rank", h.Buildings.Rank)
		api.GET("/buildings/search", h.Buildings.Search)
	}

	r.NoRoute(spaFallback(opts.StaticDir))
	return r
}

// spaFallback serves files from dir and falls back to index.html so client
// side routes resolve. Unknown /api paths stay JSON 404s.
func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if dir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.Status(http.StatusNotFound)
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	}
}
