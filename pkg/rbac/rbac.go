// Package rbac holds the role → permission table and the middleware that
// enforces it.
package rbac

import (
	"net/http"
	"sort"

	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/response"
)

// Permission names, "<resource>:<action>".
const (
	ProductsView   = "products:view"
	ProductsCreate = "products:create"
	ProductsEdit   = "products:edit"
	ProductsDelete = "products:delete"
	OrdersView     = "orders:view"
	OrdersEdit     = "orders:edit"
	OrdersDelete   = "orders:delete"
	UsersView      = "users:view"
	UsersManage    = "users:manage"
	SettingsView   = "settings:view"
	SettingsEdit   = "settings:edit"
)

var rolePermissions = map[string]map[string]bool{
	"admin": set(
		ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
		OrdersView, OrdersEdit, OrdersDelete,
		UsersView, UsersManage,
		SettingsView, SettingsEdit,
	),
	"editor": set(
		ProductsView, ProductsCreate, ProductsEdit,
		OrdersView, OrdersEdit,
		SettingsView,
	),
}

func set(perms ...string) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// Can reports whether role grants perm. Unknown roles grant nothing.
func Can(role, perm string) bool {
	return rolePermissions[role][perm]
}

// Permissions lists what role grants, sorted.
func Permissions(role string) []string {
	out := make([]string, 0, len(rolePermissions[role]))
	for p := range rolePermissions[role] {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Require allows the request only when the authenticated role grants perm.
// middleware.Auth must run first.
func Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok {
				response.Unauthorized(w)
				return
			}
			if !Can(role, perm) {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasRole allows access only to users with one of the given roles.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
