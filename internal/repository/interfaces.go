package repository

import (
	"context"

	"remediation-portal/internal/domain"
)

// ArticleRepository defines methods for article data access.
// Lookups return nil, nil when the article does not exist. Writes guarded by
// allowed statuses only apply while the stored status is still one of them and
// report whether a row was written.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter, page domain.Page) ([]domain.Article, int, error)
	UpdateContent(ctx context.Context, article *domain.Article, allowed []domain.ArticleStatus) (bool, error)
	TransitionStatus(ctx context.Context, id string, allowed []domain.ArticleStatus, change domain.StatusChange) (*domain.Article, error)
	Delete(ctx context.Context, id string, allowed []domain.ArticleStatus) (bool, error)
	StreamByAuthor(ctx context.Context, authorID string, callback func(domain.Article) error) error
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error)
}
