package service

import (
	"remediation-portal/internal/domain"
)

const (
	MsgArticleInReview       = "This article is currently being reviewed. Please wait until the review is complete."
	MsgArticleNotSubmittable = "This article cannot be submitted for review. It may already be published."
	MsgTitleRequired         = "Please provide a title for your article"
	MsgExcerptRequired       = "Please provide an excerpt for your article"
	MsgContentRequired       = "Please add content to your article"
	MsgNotArticleOwner       = "You can only submit your own articles"

	MsgSubmitted   = "Article submitted for review"
	MsgResubmitted = "Article resubmitted for review"
)

// submissionGuard is one precondition of a review submission.
type submissionGuard struct {
	name  string
	check func(a *domain.Article, actor domain.Principal) error
}

// submissionGuards run in order; the first failure is reported.
var submissionGuards = []submissionGuard{
	{
		name: "ownership",
		check: func(a *domain.Article, actor domain.Principal) error {
			if a.AuthorID != actor.UserID {
				return domain.NewError(domain.CodeForbidden, MsgNotArticleOwner)
			}
			return nil
		},
	},
	{
		name: "in_review",
		check: func(a *domain.Article, _ domain.Principal) error {
			if a.Status == domain.ArticleStatusInReview {
				return domain.NewError(domain.CodeInReview, MsgArticleInReview)
			}
			return nil
		},
	},
	{
		name: "status",
		check: func(a *domain.Article, _ domain.Principal) error {
			if !a.Status.Submittable() {
				return domain.NewValidationError(MsgArticleNotSubmittable, nil)
			}
			return nil
		},
	},
	{
		name: "title",
		check: func(a *domain.Article, _ domain.Principal) error {
			if !a.HasTitle() {
				return domain.NewValidationError(MsgTitleRequired, map[string]string{"title": MsgTitleRequired})
			}
			return nil
		},
	},
	{
		name: "excerpt",
		check: func(a *domain.Article, _ domain.Principal) error {
			if !a.HasExcerpt() {
				return domain.NewValidationError(MsgExcerptRequired, map[string]string{"excerpt": MsgExcerptRequired})
			}
			return nil
		},
	},
	{
		name: "content",
		check: func(a *domain.Article, _ domain.Principal) error {
			if !a.HasContent() {
				return domain.NewValidationError(MsgContentRequired, map[string]string{"content": MsgContentRequired})
			}
			return nil
		},
	},
}

// checkSubmission returns the name and error of the first failing guard.
func checkSubmission(a *domain.Article, actor domain.Principal) (string, error) {
	for _, g := range submissionGuards {
		if err := g.check(a, actor); err != nil {
			return g.name, err
		}
	}
	return "", nil
}

// submittableStatuses are the statuses a submission may be written from.
func submittableStatuses() []domain.ArticleStatus {
	var out []domain.ArticleStatus
	for _, s := range domain.ArticleStatuses {
		if s.Submittable() {
			out = append(out, s)
		}
	}
	return out
}

// authorEditableStatuses are the statuses in which the author may edit or delete.
func authorEditableStatuses() []domain.ArticleStatus {
	var out []domain.ArticleStatus
	for _, s := range domain.ArticleStatuses {
		if !s.LockedForAuthor() {
			out = append(out, s)
		}
	}
	return out
}
