// Package kernel assembles the HTTP handler for the storefront API:
// global middleware, the metrics and health endpoints, and the route table.
package kernel

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"storefront/app/routes"
	"storefront/config"
	"storefront/pkg/metrics"
	"storefront/pkg/middleware"
	"storefront/pkg/reqid"
	"storefront/pkg/response"
	"storefront/pkg/router"
)

// NewHandler builds the full HTTP stack around db.
//
// Middleware order (outermost first):
//  1. Prometheus metrics, outermost so latency covers everything below
//  2. Recovery, catches panics before they kill the goroutine
//  3. Request ID, injected before anything logs
//  4. Logger, logs request_id from context
//  5. CORS
//  6. Rate limiter
func NewHandler(db *gorm.DB) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimit(), time.Minute))

	// Operational endpoints live outside the API route table and its guards.
	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/healthz", healthz(db))

	routes.RegisterAPI(r, db)

	return r.Handler()
}

func healthz(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		response.Success(w, map[string]string{"status": "ok"})
	}
}
