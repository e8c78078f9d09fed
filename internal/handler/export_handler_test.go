package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/mocks"
	"remediation-portal/internal/service"
)

func exportRouter(t *testing.T, p *domain.Principal) (*mocks.MockExportService, *gin.Engine) {
	svc := mocks.NewMockExportService(t)
	h := NewExportHandler(svc)
	h.now = func() time.Time { return time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC) }

	router := newRouter(p)
	router.GET("/api/articles/export", h.StreamArticles)
	return svc, router
}

func TestStreamArticles_NDJSON(t *testing.T) {
	svc, router := exportRouter(t, &testAuthor)

	svc.EXPECT().ResolveFormat("").Return(domain.ExportFormatNDJSON, nil)
	svc.EXPECT().
		StreamArticles(mock.Anything, testAuthor, "ndjson", mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, actor domain.Principal, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"a1","title":"One"}` + "\n"))
			_ = writer.Write([]byte(`{"id":"a2","title":"Two"}` + "\n"))
			writer.Flush()
		}).
		Return(2, nil)

	w := serve(router, http.MethodGet, "/api/articles/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")
	assert.Equal(t, `attachment; filename="articles-20240630.ndjson"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var article map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &article), "line %d should be valid JSON", i)
		assert.Contains(t, article, "title")
	}
}

func TestStreamArticles_CSV(t *testing.T) {
	svc, router := exportRouter(t, &testAuthor)

	svc.EXPECT().ResolveFormat("csv").Return(domain.ExportFormatCSV, nil)
	svc.EXPECT().
		StreamArticles(mock.Anything, testAuthor, "csv", mock.Anything).
		Run(func(ctx context.Context, actor domain.Principal, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte("id,title\n"))
			_ = writer.Write([]byte("a1,One\n"))
		}).
		Return(1, nil)

	w := serve(router, http.MethodGet, "/api/articles/export?format=csv", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "id,title\na1,One\n", w.Body.String())
}

func TestStreamArticles_InvalidFormat(t *testing.T) {
	svc, router := exportRouter(t, &testAuthor)

	msg := "format must be one of: ndjson, csv"
	svc.EXPECT().ResolveFormat("xml").Return("", domain.NewValidationError(msg, map[string]string{"format": msg}))

	w := serve(router, http.MethodGet, "/api/articles/export?format=xml", "")

	body := requireErrorBody(t, w, http.StatusBadRequest, domain.CodeValidation)
	assert.Equal(t, msg, body["error"])
}

func TestStreamArticles_ErrorAfterHeaders(t *testing.T) {
	svc, router := exportRouter(t, &testAuthor)

	svc.EXPECT().ResolveFormat("").Return(domain.ExportFormatNDJSON, nil)
	svc.EXPECT().
		StreamArticles(mock.Anything, testAuthor, "ndjson", mock.Anything).
		Run(func(ctx context.Context, actor domain.Principal, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"a1"}` + "\n"))
		}).
		Return(1, errors.New("stream articles: connection reset"))

	w := serve(router, http.MethodGet, "/api/articles/export", "")

	// The status line was already sent, so the client only sees a short body.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":"a1"}`+"\n", w.Body.String())
}

func TestStreamArticles_Unauthenticated(t *testing.T) {
	_, router := exportRouter(t, nil)

	w := serve(router, http.MethodGet, "/api/articles/export", "")
	requireErrorBody(t, w, http.StatusUnauthorized, domain.CodeUnauthorized)
}
