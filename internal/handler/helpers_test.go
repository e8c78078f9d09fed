package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/middleware"
)

const (
	testArticleID = "cjld2cjxh0000qzrmn831i7rn"
	testUserID    = "ckw9xq3h50001author000001"
	testRequestID = "req-test-1"
)

var (
	testAuthor   = domain.Principal{UserID: testUserID, Role: domain.RoleUser}
	testReviewer = domain.Principal{UserID: "ckw9xq3h50002review000001", Role: domain.RoleReviewer}
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter returns a router that authenticates every request as p, or no one when p is nil.
func newRouter(p *domain.Principal) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	if p != nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.PrincipalKey, *p)
			c.Next()
		})
	}
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(middleware.RequestIDHeader, testRequestID)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, code domain.ErrorCode) map[string]interface{} {
	t.Helper()
	require.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, string(code), body["code"])
	require.Equal(t, testRequestID, body["requestId"])
	require.NotEmpty(t, body["error"])
	return body
}

