package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimit(0.001, 2))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
			codes = append(codes, rec.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Fatalf("first two requests should pass, got %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Fatalf("third request status = %d, want 429", codes[2])
		}
	})

	t.Run("disabled when rps is zero", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimit(0, 0))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 50; i++ {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
			if rec.Code != http.StatusOK {
				t.Fatalf("request %d status = %d", i, rec.Code)
			}
		}
	})
}
