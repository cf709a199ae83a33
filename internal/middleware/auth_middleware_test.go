package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("", JWTAuth(jwtService))
	protected.GET("/whoami", func(c *gin.Context) {
		id := UserIDFromContext(c)
		if id == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": *id})
	})
	protected.DELETE("/resource", RoleRequired("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)
	router := newAuthTestRouter(jwtService)

	token, err := jwtService.GenerateAccessToken(7, "staff@studenthub.edu", "STAFF")
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", "studenthub-test", time.Hour, 24*time.Hour)
		forged, err := other.GenerateAccessToken(7, "staff@studenthub.edu", "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)
	router := newAuthTestRouter(jwtService)

	t.Run("staff cannot delete", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(7, "staff@studenthub.edu", "STAFF")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/resource", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin can delete", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(1, "admin@studenthub.edu", "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/resource", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
