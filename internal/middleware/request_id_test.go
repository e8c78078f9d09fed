package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"remediation-portal/internal/logger"
	"remediation-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter(captured *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		id := middleware.GetRequestID(c)
		if logger.RequestIDFromContext(c.Request.Context()) != id {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = append(*captured, id)
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		reused bool
	}{
		{"generates when absent", "", false},
		{"reuses client id", "client-provided-id-12345", true},
		{"reuses dotted id", "trace.abc_01", true},
		{"replaces id with spaces", "bad id", false},
		{"replaces id with newline", "abc\nforged=1", false},
		{"replaces overlong id", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured []string
			router := requestIDRouter(&captured)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			require.Len(t, captured, 1)
			headerID := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, captured[0], headerID)

			if tt.reused {
				assert.Equal(t, tt.header, headerID)
				return
			}
			_, err := uuid.Parse(headerID)
			assert.NoError(t, err)
		})
	}
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	var captured []string
	router := requestIDRouter(&captured)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, captured, 3)
	assert.NotEqual(t, captured[0], captured[1])
	assert.NotEqual(t, captured[1], captured[2])
	assert.NotEqual(t, captured[0], captured[2])
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, 12345)
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, "test-request-id")
	assert.Equal(t, "test-request-id", middleware.GetRequestID(c))
}
