package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultArticleTitle is the placeholder title given to new drafts.
// An article still carrying it cannot be submitted for review.
const DefaultArticleTitle = "Untitled Article"

// ArticleStatus is the editorial state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft                ArticleStatus = "DRAFT"
	ArticleStatusPendingReview        ArticleStatus = "PENDING_REVIEW"
	ArticleStatusInReview             ArticleStatus = "IN_REVIEW"
	ArticleStatusPublished            ArticleStatus = "PUBLISHED"
	ArticleStatusRejected             ArticleStatus = "REJECTED"
	ArticleStatusScheduledForDeletion ArticleStatus = "SCHEDULED_FOR_DELETION"
)

// ArticleStatuses contains every article status in lifecycle order.
var ArticleStatuses = []ArticleStatus{
	ArticleStatusDraft,
	ArticleStatusPendingReview,
	ArticleStatusInReview,
	ArticleStatusPublished,
	ArticleStatusRejected,
	ArticleStatusScheduledForDeletion,
}

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusDraft,
		ArticleStatusPendingReview,
		ArticleStatusInReview,
		ArticleStatusPublished,
		ArticleStatusRejected,
		ArticleStatusScheduledForDeletion:
		return true
	}
	return false
}

// Submittable reports whether an author may send an article in this status to review.
func (s ArticleStatus) Submittable() bool {
	switch s {
	case ArticleStatusDraft,
		ArticleStatusRejected,
		ArticleStatusPendingReview,
		ArticleStatusScheduledForDeletion:
		return true
	case ArticleStatusInReview, ArticleStatusPublished:
		return false
	}
	return false
}

// LockedForAuthor reports whether the author is barred from changing the article.
func (s ArticleStatus) LockedForAuthor() bool {
	return s == ArticleStatusInReview
}

// ParseArticleStatus converts a raw value into an ArticleStatus.
func ParseArticleStatus(raw string) (ArticleStatus, bool) {
	s := ArticleStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// IconPosition controls where the article icon is rendered on its card.
type IconPosition string

const (
	IconPositionLeft  IconPosition = "left"
	IconPositionRight IconPosition = "right"
	IconPositionTop   IconPosition = "top"
)

// ValidIconPositions contains all valid icon positions.
var ValidIconPositions = []IconPosition{IconPositionLeft, IconPositionRight, IconPositionTop}

// Article is a unit of user-generated content going through editorial review.
type Article struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Excerpt      string          `json:"excerpt"`
	Content      *string         `json:"content,omitempty"`
	ContentJSON  json.RawMessage `json:"contentJson,omitempty"`
	Category     string          `json:"category"`
	IconName     string          `json:"iconName"`
	IconPosition IconPosition    `json:"iconPosition"`
	IconColor    string          `json:"iconColor"`
	Cover        string          `json:"cover"`
	ReadTime     int             `json:"readTime"`
	Status       ArticleStatus   `json:"status"`
	AuthorID     string          `json:"authorId"`

	AdminFeedback          *string    `json:"adminFeedback,omitempty"`
	SubmittedAt            *time.Time `json:"submittedAt,omitempty"`
	RejectedAt             *time.Time `json:"rejectedAt,omitempty"`
	ScheduledForDeletionAt *time.Time `json:"scheduledForDeletionAt,omitempty"`
	PublishedAt            *time.Time `json:"publishedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTitle reports whether the article carries a real title.
func (a *Article) HasTitle() bool {
	t := strings.TrimSpace(a.Title)
	return t != "" && t != DefaultArticleTitle
}

// HasExcerpt reports whether the article has a non-blank excerpt.
func (a *Article) HasExcerpt() bool {
	return strings.TrimSpace(a.Excerpt) != ""
}

// HasContent reports whether at least one content representation is present.
func (a *Article) HasContent() bool {
	if a.Content != nil && strings.TrimSpace(*a.Content) != "" {
		return true
	}
	return !IsEmptyJSON(a.ContentJSON)
}

// IsEmptyJSON reports whether raw holds no document: absent, blank or a JSON null.
func IsEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// StatusChange is the full set of lifecycle columns written by one transition.
// Every field is written, so a nil pointer clears the column.
type StatusChange struct {
	Status                 ArticleStatus
	AdminFeedback          *string
	SubmittedAt            *time.Time
	RejectedAt             *time.Time
	ScheduledForDeletionAt *time.Time
	PublishedAt            *time.Time
}

// CurrentLifecycle returns the article's lifecycle columns as a StatusChange,
// a starting point for computing the next one.
func (a *Article) CurrentLifecycle() StatusChange {
	return StatusChange{
		Status:                 a.Status,
		AdminFeedback:          a.AdminFeedback,
		SubmittedAt:            a.SubmittedAt,
		RejectedAt:             a.RejectedAt,
		ScheduledForDeletionAt: a.ScheduledForDeletionAt,
		PublishedAt:            a.PublishedAt,
	}
}

// Apply copies a StatusChange onto the article.
func (a *Article) Apply(change StatusChange) {
	a.Status = change.Status
	a.AdminFeedback = change.AdminFeedback
	a.SubmittedAt = change.SubmittedAt
	a.RejectedAt = change.RejectedAt
	a.ScheduledForDeletionAt = change.ScheduledForDeletionAt
	a.PublishedAt = change.PublishedAt
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	AuthorID string
	Statuses []ArticleStatus
	// OldestSubmittedFirst orders by submission time instead of most recent update.
	OldestSubmittedFirst bool
}

// Page is a validated page request.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ArticleList is a page of articles with the total number of matches.
type ArticleList struct {
	Articles []Article `json:"articles"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
