package domain

import "time"

// ArticleEventType names a lifecycle event emitted after a status change.
type ArticleEventType string

const (
	EventArticleSubmitted            ArticleEventType = "article.submitted"
	EventArticleResubmitted          ArticleEventType = "article.resubmitted"
	EventArticleClaimed              ArticleEventType = "article.claimed"
	EventArticlePublished            ArticleEventType = "article.published"
	EventArticleRejected             ArticleEventType = "article.rejected"
	EventArticleScheduledForDeletion ArticleEventType = "article.scheduled_for_deletion"
)

// ArticleEvent describes a committed status transition.
type ArticleEvent struct {
	Type       ArticleEventType `json:"type"`
	ArticleID  string           `json:"articleId"`
	AuthorID   string           `json:"authorId"`
	ActorID    string           `json:"actorId"`
	FromStatus ArticleStatus    `json:"fromStatus"`
	ToStatus   ArticleStatus    `json:"toStatus"`
	RequestID  string           `json:"requestId,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}
