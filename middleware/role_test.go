package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role string, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxRole, role)
		c.Set(CtxIsAdmin, admin)
	})
	r.GET("/professional-only", RequireRole("professional"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin-only", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRole(t *testing.T) {
	w := httptest.NewRecorder()
	roleRouter("professional", false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/professional-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	roleRouter("patient", false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/professional-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	roleRouter("professional", true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	roleRouter("professional", false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
