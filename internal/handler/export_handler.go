package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/logger"
	"remediation-portal/internal/middleware"
	"remediation-portal/internal/service"
)

// ExportHandler streams a caller's articles as a download.
type ExportHandler struct {
	exportService service.ExportServiceInterface
	now           func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		now:           time.Now,
	}
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamArticles handles GET /api/articles/export?format=ndjson|csv
func (h *ExportHandler) StreamArticles(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	format, err := h.exportService.ResolveFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	requestID := middleware.GetRequestID(c)
	log := logger.WithFields(
		slog.String("request_id", requestID),
		slog.String("user_id", actor.UserID))

	c.Header("Content-Type", format.ContentType())
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Request-ID", requestID)
	filename := "articles-" + h.now().UTC().Format("20060102") + "." + string(format)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")

	writer := &ginStreamWriter{writer: c.Writer}
	count, err := h.exportService.StreamArticles(c.Request.Context(), actor, string(format), writer)
	if err != nil {
		// headers are already sent; the truncated body is all the client gets
		log.Error("Streaming export error",
			slog.String("format", string(format)),
			slog.Int("count", count),
			slog.String("error", err.Error()))
		return
	}

	log.Debug("Streaming export completed",
		slog.String("format", string(format)),
		slog.Int("count", count))
}
