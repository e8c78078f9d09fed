package service

import (
	"context"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/validator"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// SubmissionResult is the outcome of a successful review submission.
type SubmissionResult struct {
	Article *domain.Article
	Message string
}

// ArticleServiceInterface defines the author and reviewer operations on articles.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	Create(ctx context.Context, actor domain.Principal, req *validator.ArticleRequest) (*domain.Article, error)
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error)
	Update(ctx context.Context, actor domain.Principal, id string, req *validator.ArticleRequest) (*domain.Article, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
	List(ctx context.Context, actor domain.Principal, query validator.ListArticlesQuery) (*domain.ArticleList, error)

	SubmitForReview(ctx context.Context, actor domain.Principal, id string) (*SubmissionResult, error)

	ListReviewQueue(ctx context.Context, actor domain.Principal, query validator.ListArticlesQuery) (*domain.ArticleList, error)
	Claim(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error)
	Publish(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error)
	Reject(ctx context.Context, actor domain.Principal, id string, req *validator.RejectArticleRequest) (*domain.Article, error)
	ScheduleDeletion(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error)
}

// ExportServiceInterface defines the interface for export operations.
type ExportServiceInterface interface {
	// ResolveFormat validates a requested format, applying the default when empty.
	ResolveFormat(raw string) (domain.ExportFormat, error)
	// StreamArticles streams the caller's articles to the writer and returns how many were written.
	StreamArticles(ctx context.Context, actor domain.Principal, format string, writer StreamWriter) (int, error)
}

// ProfileServiceInterface defines the interface for profile operations.
type ProfileServiceInterface interface {
	Get(ctx context.Context, actor domain.Principal) (*domain.User, error)
	Update(ctx context.Context, actor domain.Principal, req *validator.UpdateProfileRequest) (*domain.User, error)
}
