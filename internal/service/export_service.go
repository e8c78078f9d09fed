package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
	"remediation-portal/internal/repository"
)

// exportFlushEvery is how many rows are written between flushes to the client.
const exportFlushEvery = 100

var articleCSVHeader = []string{
	"id", "title", "excerpt", "category", "status", "read_time", "cover",
	"submitted_at", "published_at", "created_at", "updated_at",
}

// ExportService streams a user's articles in NDJSON or CSV.
type ExportService struct {
	articleRepo   repository.ArticleRepository
	defaultFormat domain.ExportFormat
}

// NewExportService creates a new ExportService. An empty format in a request
// falls back to defaultFormat.
func NewExportService(articleRepo repository.ArticleRepository, defaultFormat domain.ExportFormat) *ExportService {
	return &ExportService{
		articleRepo:   articleRepo,
		defaultFormat: defaultFormat,
	}
}

// ResolveFormat validates a requested format, applying the default when empty.
func (s *ExportService) ResolveFormat(raw string) (domain.ExportFormat, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return s.defaultFormat, nil
	}
	if !domain.IsValidFormat(raw) {
		msg := "format must be one of: ndjson, csv"
		return "", domain.NewValidationError(msg, map[string]string{"format": msg})
	}
	return domain.ExportFormat(raw), nil
}

// StreamArticles writes every article owned by the caller to writer.
func (s *ExportService) StreamArticles(ctx context.Context, actor domain.Principal, rawFormat string, writer StreamWriter) (int, error) {
	format, err := s.ResolveFormat(rawFormat)
	if err != nil {
		return 0, err
	}

	timer := metrics.NewTimer()
	var count int

	switch format {
	case domain.ExportFormatCSV:
		count, err = s.streamCSV(ctx, actor.UserID, writer)
	default:
		count, err = s.streamNDJSON(ctx, actor.UserID, writer)
	}
	writer.Flush()

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.ObserveExport(string(format), result, timer.Seconds(), count)

	if err != nil {
		return count, fmt.Errorf("stream articles: %w", err)
	}

	logger.FromContext(ctx).Info("Article export completed",
		slog.String("author_id", actor.UserID),
		slog.String("format", string(format)),
		slog.Int("count", count))
	return count, nil
}

func (s *ExportService) streamNDJSON(ctx context.Context, authorID string, writer StreamWriter) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	var count int

	err := s.articleRepo.StreamByAuthor(ctx, authorID, func(article domain.Article) error {
		buf.Reset()
		if err := encoder.Encode(article); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		if err := writer.Write(buf.Bytes()); err != nil {
			return err
		}
		count++
		if count%exportFlushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	return count, err
}

func (s *ExportService) streamCSV(ctx context.Context, authorID string, writer StreamWriter) (int, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)

	writeRecord := func(record []string) error {
		buf.Reset()
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		return writer.Write(buf.Bytes())
	}

	if err := writeRecord(articleCSVHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err := s.articleRepo.StreamByAuthor(ctx, authorID, func(article domain.Article) error {
		if err := writeRecord(articleCSVRecord(article)); err != nil {
			return err
		}
		count++
		if count%exportFlushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	return count, err
}

func articleCSVRecord(a domain.Article) []string {
	return []string{
		a.ID,
		csvSafe(a.Title),
		csvSafe(a.Excerpt),
		csvSafe(a.Category),
		string(a.Status),
		strconv.Itoa(a.ReadTime),
		csvSafe(a.Cover),
		formatOptionalTime(a.SubmittedAt),
		formatOptionalTime(a.PublishedAt),
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// csvSafe neutralizes values a spreadsheet would evaluate as a formula.
func csvSafe(v string) string {
	if v != "" && strings.ContainsAny(v[:1], "=+-@\t\r") {
		return "'" + v
	}
	return v
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
