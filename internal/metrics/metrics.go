package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MatchRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_match_requests_total",
		Help: "Building match attempts by outcome",
	}, []string{"outcome"})
	CatalogBuildings = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campus_catalog_buildings",
		Help: "Number of buildings in the active catalog",
	})
	CatalogReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_catalog_reloads_total",
		Help: "Catalog reload attempts by outcome",
	}, []string{"outcome"})
	GeocodeRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_geocode_requests_total",
		Help: "Total reverse geocoding upstream requests",
	})
	GeocodeFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_geocode_fail_total",
		Help: "Total reverse geocoding upstream failures",
	})
	GeocodeDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campus_geocode_duration_ms",
		Help:    "Reverse geocoding upstream duration in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 500, 1000, 2000, 5000},
	})
	GeocodeCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_geocode_cache_total",
		Help: "Reverse geocoding cache lookups by result",
	}, []string{"result"})
	ComplimentsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_compliments_created_total",
		Help: "Total compliments stored",
	})
	LikesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_likes_total",
		Help: "Like and unlike operations",
	}, []string{"direction"})
	FeedbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_feedback_total",
		Help: "Total feedback messages stored",
	})
)

func init() {
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(CatalogBuildings)
	prometheus.MustRegister(CatalogReloadsTotal)
	prometheus.MustRegister(GeocodeRequestsTotal)
	prometheus.MustRegister(GeocodeFailTotal)
	prometheus.MustRegister(GeocodeDurationMs)
	prometheus.MustRegister(GeocodeCacheTotal)
	prometheus.MustRegister(ComplimentsCreatedTotal)
	prometheus.MustRegister(LikesTotal)
	prometheus.MustRegister(FeedbackTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
