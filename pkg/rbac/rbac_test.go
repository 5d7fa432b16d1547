package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shopadmin/pkg/auth"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/rbac"
)

func TestRolePermissions(t *testing.T) {
	assert.True(t, rbac.Can("admin", rbac.ProductsDelete))
	assert.True(t, rbac.Can("editor", rbac.ProductsEdit))
	assert.False(t, rbac.Can("editor", rbac.ProductsDelete))
	assert.False(t, rbac.Can("editor", rbac.UsersManage))
	assert.False(t, rbac.Can("guest", rbac.ProductsView))

	assert.Len(t, rbac.Permissions("admin"), 11)
	assert.Equal(t, []string{
		"orders:edit", "orders:view",
		"products:create", "products:edit", "products:view",
		"settings:view",
	}, rbac.Permissions("editor"))
	assert.Empty(t, rbac.Permissions("nobody"))
}

func serveAs(role string, mw func(http.Handler) http.Handler) int {
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	if role != "" {
		req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{UserID: "1", Role: role}))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequire(t *testing.T) {
	mw := rbac.Require(rbac.ProductsDelete)

	assert.Equal(t, http.StatusOK, serveAs("admin", mw))
	assert.Equal(t, http.StatusForbidden, serveAs("editor", mw))
	assert.Equal(t, http.StatusUnauthorized, serveAs("", mw))
}

func TestHasRole(t *testing.T) {
	mw := rbac.HasRole("admin")

	assert.Equal(t, http.StatusOK, serveAs("admin", mw))
	assert.Equal(t, http.StatusForbidden, serveAs("editor", mw))
}
