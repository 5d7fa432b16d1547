package routes

import (
	"net/http"

	"github.com/shashiranjanraj/shopadmin/app/controllers"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/rbac"
	"github.com/shashiranjanraj/shopadmin/pkg/response"
	"github.com/shashiranjanraj/shopadmin/pkg/router"
)

// Controllers are the handlers the API mounts.
type Controllers struct {
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Auth     *controllers.AuthController
}

// RegisterAPI mounts the /api routes. With enforce set, every catalogue and
// order route needs a bearer token whose role grants the route's permission.
func RegisterAPI(r *router.Router, c Controllers, enforce bool) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w)
	})

	guard := func(perm string) []router.Middleware {
		if !enforce {
			return nil
		}
		return []router.Middleware{middleware.Auth, rbac.Require(perm)}
	}

	api := r.Group("/api", middleware.NoCache)

	products := api.Group("/products")
	products.Get("/", "products.index", ctx.Wrap(c.Products.Index), guard(rbac.ProductsView)...)
	products.Post("/", "products.store", ctx.Wrap(c.Products.Store), guard(rbac.ProductsCreate)...)
	products.Get("/{id}", "products.show", ctx.Wrap(c.Products.Show), guard(rbac.ProductsView)...)
	products.Put("/{id}", "products.update", ctx.Wrap(c.Products.Update), guard(rbac.ProductsEdit)...)
	products.Delete("/{id}", "products.destroy", ctx.Wrap(c.Products.Destroy), guard(rbac.ProductsDelete)...)

	orders := api.Group("/orders")
	orders.Get("/", "orders.index", ctx.Wrap(c.Orders.Index), guard(rbac.OrdersView)...)
	orders.Post("/", "orders.store", ctx.Wrap(c.Orders.Store), guard(rbac.OrdersEdit)...)
	orders.Get("/{id}", "orders.show", ctx.Wrap(c.Orders.Show), guard(rbac.OrdersView)...)
	orders.Put("/{id}", "orders.update", ctx.Wrap(c.Orders.Update), guard(rbac.OrdersEdit)...)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", "auth.login", ctx.Wrap(c.Auth.Login))
	authGroup.Get("/me", "auth.me", ctx.Wrap(c.Auth.Me), middleware.Auth)
}
