// Package app assembles the shopadmin application: stores seeded from the
// fixtures, the mutation services, the event bus, the optional Redis list
// cache and the HTTP stack.
//
//	a, err := app.New(ctx, app.OptionsFromConfig())
//	if err != nil { ... }
//	defer a.Close()
//	err = a.Serve(ctx, ":"+config.AppPort())
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/shopadmin/app/controllers"
	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/routes"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/database/seeders"
	"github.com/shashiranjanraj/shopadmin/pkg/cache"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/router"
	"github.com/shashiranjanraj/shopadmin/pkg/workerpool"
)

// Options are the knobs New reads. OptionsFromConfig fills them from the
// environment.
type Options struct {
	SeedFixtures  bool
	AuthEnforce   bool
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	RateLimit     int
	EventWorkers  int
}

func OptionsFromConfig() Options {
	return Options{
		SeedFixtures:  config.SeedFixtures(),
		AuthEnforce:   config.AuthEnforce(),
		RedisAddr:     config.RedisAddr(),
		RedisPassword: config.RedisPassword(),
		CacheTTL:      config.CacheTTL(),
		RateLimit:     config.RateLimit(),
		EventWorkers:  config.EventWorkers(),
	}
}

// Application is one running instance. Every store it owns lives and dies
// with it.
type Application struct {
	Products *services.ProductService
	Orders   *services.OrderService
	Auth     *services.AuthService
	Bus      *event.Bus

	router  *router.Router
	handler http.Handler
	limiter *middleware.RateLimiter
	redis   *cache.Redis
}

// New builds an Application. A configured but unreachable Redis is logged
// and skipped; lists are then computed on every request.
func New(ctx context.Context, opts Options) (*Application, error) {
	var (
		products []models.Product
		orders   []models.Order
		err      error
	)
	if opts.SeedFixtures {
		if products, err = seeders.Products(); err != nil {
			return nil, fmt.Errorf("seed products: %w", err)
		}
		if orders, err = seeders.Orders(); err != nil {
			return nil, fmt.Errorf("seed orders: %w", err)
		}
	}

	users, err := services.DemoUsers()
	if err != nil {
		return nil, err
	}

	a := &Application{Bus: event.NewBus(workerpool.New(opts.EventWorkers))}
	a.Bus.Listen("*", audit)

	svcOpts := []services.Option{services.WithEvents(a.Bus)}
	if opts.RedisAddr != "" {
		rc, err := cache.Connect(ctx, opts.RedisAddr, opts.RedisPassword)
		if err != nil {
			logger.Warn("list cache disabled", "error", err)
		} else {
			a.redis = rc
			svcOpts = append(svcOpts, services.WithCache(rc, opts.CacheTTL))
		}
	}

	a.Products = services.NewProductService(repositories.NewProductRepository(products), svcOpts...)
	a.Orders = services.NewOrderService(repositories.NewOrderRepository(orders), svcOpts...)
	a.Auth = services.NewAuthService(users)

	limit := opts.RateLimit
	if limit < 1 {
		limit = config.RateLimit()
	}
	a.limiter = middleware.NewRateLimiter(limit, time.Minute)
	a.router = router.New()
	a.handler = buildHandler(a, routes.Controllers{
		Products: controllers.NewProductController(a.Products, a.router),
		Orders:   controllers.NewOrderController(a.Orders, a.router),
		Auth:     controllers.NewAuthController(a.Auth),
	}, opts.AuthEnforce)

	logger.Info("application ready",
		"products", a.Products.Count(),
		"orders", a.Orders.Count(),
		"cache", a.redis != nil,
		"auth_enforce", opts.AuthEnforce,
	)
	return a, nil
}

// Handler is the root HTTP handler.
func (a *Application) Handler() http.Handler { return a.handler }

// Routes lists every mounted route.
func (a *Application) Routes() []router.RouteInfo { return a.router.Routes() }

// Close drains pending event listeners and releases the cache connection.
func (a *Application) Close() error {
	a.limiter.Stop()
	a.Bus.Close()
	return a.redis.Close()
}

// audit writes one log line per mutation.
func audit(e event.Event) {
	logger.Info("audit",
		"event", e.Name,
		"entity", e.Entity,
		"id", e.RecordID,
		"at", e.At.Format(time.RFC3339),
	)
}
