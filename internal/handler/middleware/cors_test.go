//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"groundio/internal/handler/middleware"
	"groundio/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Origin"},
		MaxAge:       time.Hour,
	}))
	r.POST("/api/bookings", func(c *gin.Context) {
		c.Header("Location", "/api/bookings/1")
		c.Status(http.StatusCreated)
	})

	t.Run("preflight allows the idempotency header", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		rec := stdhttptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})

	t.Run("exposes Location on actual requests", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := stdhttptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Location")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := stdhttptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
