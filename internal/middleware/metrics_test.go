package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Metrics())
	router.GET("/api/articles/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/articles", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "123"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("labels by route template", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/:id", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		for _, id := range []string{"a", "b"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initial+2, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/:id", "200")))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("records POST status", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/articles", "201"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/articles", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, initial+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/articles", "201")))
	})

	t.Run("unmatched routes share one label", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initial+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	})

	t.Run("skips probes", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initial, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
	})
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := logger.Default()
	logger.SetLogger(logger.New(&buf, slog.LevelInfo))
	defer logger.SetLogger(previous)

	router := gin.New()
	router.Use(RequestID(), AccessLog())
	router.GET("/api/profile", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set(RequestIDHeader, "req-log-1")
	router.ServeHTTP(httptest.NewRecorder(), req)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/live", nil))

	output := buf.String()
	assert.Contains(t, output, `"request_id":"req-log-1"`)
	assert.Contains(t, output, `"status":204`)
	assert.NotContains(t, output, "/live")
}
