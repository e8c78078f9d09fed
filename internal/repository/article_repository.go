package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"remediation-portal/internal/domain"
)

const articleColumns = `id, title, excerpt, content, content_json, category, icon_name, icon_position,
	icon_color, cover, read_time, status, author_id, admin_feedback, submitted_at, rejected_at,
	scheduled_for_deletion_at, published_at, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article. CreatedAt and UpdatedAt are set by the database.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, excerpt, content, content_json, category, icon_name,
			icon_position, icon_color, cover, read_time, status, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`, a.ID, a.Title, a.Excerpt, a.Content, jsonParam(a.ContentJSON), a.Category, a.IconName,
		string(a.IconPosition), a.IconColor, a.Cover, a.ReadTime, string(a.Status), a.AuthorID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by ID.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := scanArticle(r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// List returns one page of articles matching filter plus the total match count.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter, page domain.Page) ([]domain.Article, int, error) {
	var conditions []string
	var args []interface{}

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, statusStrings(filter.Statuses))
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	orderBy := "updated_at DESC, id"
	if filter.OldestSubmittedFirst {
		orderBy = "submitted_at ASC NULLS LAST, id"
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM articles %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		articleColumns, where, orderBy, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, page.Limit)
	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, total, nil
}

// UpdateContent writes the author-editable fields of an article.
func (r *PostgresArticleRepository) UpdateContent(ctx context.Context, a *domain.Article, allowed []domain.ArticleStatus) (bool, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, excerpt = $3, content = $4, content_json = $5, category = $6,
			icon_name = $7, icon_position = $8, icon_color = $9, cover = $10, read_time = $11,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($12)
		RETURNING updated_at
	`, a.ID, a.Title, a.Excerpt, a.Content, jsonParam(a.ContentJSON), a.Category, a.IconName,
		string(a.IconPosition), a.IconColor, a.Cover, a.ReadTime, statusStrings(allowed),
	).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update article: %w", err)
	}
	return true, nil
}

// TransitionStatus writes a status change in a single conditional UPDATE.
// It returns nil, nil when the article is missing or no longer in an allowed status.
func (r *PostgresArticleRepository) TransitionStatus(ctx context.Context, id string, allowed []domain.ArticleStatus, change domain.StatusChange) (*domain.Article, error) {
	var a domain.Article
	err := scanArticle(r.pool.QueryRow(ctx, `
		UPDATE articles
		SET status = $2, admin_feedback = $3, submitted_at = $4, rejected_at = $5,
			scheduled_for_deletion_at = $6, published_at = $7, updated_at = NOW()
		WHERE id = $1 AND status = ANY($8)
		RETURNING `+articleColumns,
		id, string(change.Status), change.AdminFeedback, change.SubmittedAt, change.RejectedAt,
		change.ScheduledForDeletionAt, change.PublishedAt, statusStrings(allowed),
	), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transition article status: %w", err)
	}
	return &a, nil
}

// Delete removes an article while it is in one of the allowed statuses.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string, allowed []domain.ArticleStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1 AND status = ANY($2)`, id, statusStrings(allowed))
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// StreamByAuthor streams an author's articles for export with O(1) memory.
func (r *PostgresArticleRepository) StreamByAuthor(ctx context.Context, authorID string, callback func(domain.Article) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles WHERE author_id = $1 ORDER BY created_at, id`, authorID)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return fmt.Errorf("scan article: %w", err)
		}

		if err := callback(a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func scanArticle(row pgx.Row, a *domain.Article) error {
	var contentJSON []byte
	var iconPosition, status string
	err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &contentJSON, &a.Category, &a.IconName,
		&iconPosition, &a.IconColor, &a.Cover, &a.ReadTime, &status, &a.AuthorID, &a.AdminFeedback,
		&a.SubmittedAt, &a.RejectedAt, &a.ScheduledForDeletionAt, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return err
	}
	a.ContentJSON = contentJSON
	a.IconPosition = domain.IconPosition(iconPosition)
	a.Status = domain.ArticleStatus(status)
	return nil
}

// jsonParam maps an empty document to SQL NULL.
func jsonParam(raw []byte) interface{} {
	if domain.IsEmptyJSON(raw) {
		return nil
	}
	return string(raw)
}

func statusStrings(statuses []domain.ArticleStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
