package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/config"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := testRouter(cfg)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleClient,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doGet(r, "/private", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"client"`)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "test-secret"})

	w := doGet(r, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "test-secret"})

	w := doGet(r, "/private", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := testRouter(cfg)

	token := signToken(t, "outro-secret", jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleClient,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doGet(r, "/private", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := testRouter(cfg)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleClient,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w := doGet(r, "/private", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := testRouter(cfg)

	clientToken := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleClient,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	adminToken := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(1),
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doGet(r, "/admin", "Bearer "+clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
