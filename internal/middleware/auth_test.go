package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	"github.com/BruksfildServices01/foodgram/internal/cache"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

func setupRouter(tokens *auth.Tokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tokens))

	r.GET("/whoami", func(c *gin.Context) {
		req := CurrentRequester(c)
		c.JSON(http.StatusOK, gin.H{"id": req.UserID, "role": req.Role})
	})
	r.POST("/admin", Allow(permissions.AdminOrReadOnly), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	r := setupRouter(auth.NewTokens("secret", time.Hour, cache.NewMemoryStore()))

	w := do(r, http.MethodGet, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"role":""}`, w.Body.String())
}

func TestAuthMiddleware_AcceptsTokenAndBearer(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour, cache.NewMemoryStore())
	r := setupRouter(tokens)

	raw, err := tokens.Issue(&models.User{ID: 5, Role: models.RoleUser})
	require.NoError(t, err)

	for _, scheme := range []string{"Token ", "Bearer "} {
		w := do(r, http.MethodGet, "/whoami", scheme+raw)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":5,"role":"user"}`, w.Body.String())
	}
}

func TestAuthMiddleware_RejectsGarbage(t *testing.T) {
	r := setupRouter(auth.NewTokens("secret", time.Hour, cache.NewMemoryStore()))

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/whoami", "Token nope").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/whoami", "Basic abc").Code)
}

func TestAllow_StatusByRequester(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour, cache.NewMemoryStore())
	r := setupRouter(tokens)

	userToken, _ := tokens.Issue(&models.User{ID: 1, Role: models.RoleUser})
	adminToken, _ := tokens.Issue(&models.User{ID: 2, Role: models.RoleAdmin})

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/admin", "Token "+userToken).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/admin", "Token "+adminToken).Code)
}
