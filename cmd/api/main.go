package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "campus-compliments/docs"
	"campus-compliments/internal/catalog"
	"campus-compliments/internal/config"
	"campus-compliments/internal/geocoding"
	"campus-compliments/internal/handler"
	"campus-compliments/internal/logger"
	"campus-compliments/internal/matcher"
	"campus-compliments/internal/metrics"
	"campus-compliments/internal/migrate"
	"campus-compliments/internal/repository"
	"campus-compliments/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	catalogDebounce = 500 * time.Millisecond
	shutdownTimeout = 10 * time.Second
)

//	@title			Campus Compliments API
//	@version		1.0
//	@description	Pin compliments to campus buildings and resolve map coordinates to catalog entries.
//	@BasePath		/api
func main() {
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	l := logger.Setup(config.LogLevel, config.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrate.Run(ctx, config.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot ensure schema")
	}

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	// Building catalog: the JSON file wins, the buildings table is the fallback.
	cat, err := catalog.LoadFile(config.CatalogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", config.CatalogPath).Msg("catalog_file_unavailable")
		cat, err = catalog.LoadRepository(ctx, repo)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load building catalog")
		}
	}
	metrics.CatalogBuildings.Set(float64(cat.Len()))
	log.Info().Int("buildings", cat.Len()).Msg("catalog_loaded")
	holder := matcher.NewHolder(cat)

	var geocoder geocoding.Geocoder = geocoding.NewMapboxClient(config.MapboxBaseURL, config.MapboxToken, config.GeocodeTimeout)
	if config.MapboxToken == "" {
		log.Warn().Msg("MAPBOX_TOKEN not set, pins will fall back to raw coordinates")
	}
	if rdb := geocoding.OpenRedis(config.RedisAddr, config.RedisPassword, config.RedisDB); rdb != nil {
		defer rdb.Close()
		geocoder = geocoding.NewCachedGeocoder(geocoder, rdb, config.GeocodeCacheTTL)
		log.Info().Str("addr", config.RedisAddr).Msg("geocode_cache_enabled")
	}

	// Initialize layers
	buildingService := service.NewBuildingService(holder)
	complimentService := service.NewComplimentService(repo, config.MaxComplimentLength)
	feedbackService := service.NewFeedbackService(repo)
	locateService := service.NewLocateService(geocoder, buildingService)

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.Handlers{
		Health:      handler.NewHealthHandler(repo),
		Compliments: handler.NewComplimentHandler(complimentService),
		Feedback:    handler.NewFeedbackHandler(feedbackService),
		Locate:      handler.NewLocateHandler(locateService),
		Buildings:   handler.NewBuildingHandler(buildingService),
	}, handler.RouterOptions{
		Logger:       l,
		StaticDir:    config.StaticDir,
		RateLimitQPS: config.RateLimitQPS,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", config.ServerAddress).Msg("server_listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if config.CatalogWatch {
		watcher, err := catalog.NewWatcher(config.CatalogPath, holder, catalogDebounce)
		if err != nil {
			log.Warn().Err(err).Msg("catalog_watch_disabled")
		} else {
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server_stopped")
		return
	}
	log.Info().Msg("server_stopped")
}
