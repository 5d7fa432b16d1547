package app

import (
	"net/http"

	"github.com/shashiranjanraj/shopadmin/app/routes"
	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/reqid"
	"github.com/shashiranjanraj/shopadmin/pkg/response"
)

// buildHandler mounts the global middleware, the API routes, and the
// health and metrics endpoints on a.router.
func buildHandler(a *Application, c routes.Controllers, enforce bool) http.Handler {
	r := a.router

	// Outermost first:
	//  1. Prometheus metrics, for the full latency
	//  2. Recovery, so a panic still gets counted and answered
	//  3. Request ID, before anything logs
	//  4. Logger
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(a.limiter.Middleware)

	routes.RegisterAPI(r, c, enforce)

	r.Get("/healthz", "health", a.health)
	r.Get("/metrics", "metrics", metrics.Handler())

	return r.Handler()
}

func (a *Application) health(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]interface{}{
		"status":   "ok",
		"products": a.Products.Count(),
		"orders":   a.Orders.Count(),
		"cache":    a.redis != nil,
	})
}
