package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"remediation-portal/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := map[domain.ErrorCode]int{
		domain.CodeValidation:        http.StatusBadRequest,
		domain.CodeInReview:          http.StatusBadRequest,
		domain.CodeUnauthorized:      http.StatusUnauthorized,
		domain.CodeForbidden:         http.StatusForbidden,
		domain.CodeNotFound:          http.StatusNotFound,
		domain.CodeConflict:          http.StatusConflict,
		domain.CodeInvalidTransition: http.StatusConflict,
		domain.CodeInternal:          http.StatusInternalServerError,
	}
	for code, status := range tests {
		assert.Equal(t, status, statusFor(code), code)
	}
	assert.Equal(t, http.StatusInternalServerError, statusFor(domain.ErrorCode("SOMETHING")))
}

func TestRespondError(t *testing.T) {
	t.Run("domain error with details", func(t *testing.T) {
		router := newRouter(nil)
		router.GET("/x", func(c *gin.Context) {
			respondError(c, domain.NewValidationError("Title is required", map[string]string{"title": "Title is required"}))
		})

		w := serve(router, http.MethodGet, "/x", "")
		body := requireErrorBody(t, w, http.StatusBadRequest, domain.CodeValidation)
		assert.Equal(t, "Title is required", body["error"])
		assert.Equal(t, map[string]interface{}{"title": "Title is required"}, body["details"])
	})

	t.Run("internal errors are opaque", func(t *testing.T) {
		router := newRouter(nil)
		router.GET("/x", func(c *gin.Context) {
			respondError(c, errors.New("get article: dial tcp 10.0.0.5:5432: connection refused"))
		})

		w := serve(router, http.MethodGet, "/x", "")
		body := requireErrorBody(t, w, http.StatusInternalServerError, domain.CodeInternal)
		assert.Equal(t, msgInternalError, body["error"])
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
		assert.NotContains(t, body, "details")
	})

	t.Run("missing principal", func(t *testing.T) {
		router := newRouter(nil)
		router.GET("/x", func(c *gin.Context) {
			if _, ok := principal(c); ok {
				c.Status(http.StatusOK)
			}
		})

		w := serve(router, http.MethodGet, "/x", "")
		requireErrorBody(t, w, http.StatusUnauthorized, domain.CodeUnauthorized)
	})
}
