package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucsky/cuid"

	"remediation-portal/internal/content"
	"remediation-portal/internal/domain"
	"remediation-portal/internal/events"
	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
	"remediation-portal/internal/repository"
	"remediation-portal/internal/validator"
)

const (
	MsgArticleNotFound    = "Article not found"
	MsgArticleForbidden   = "You do not have access to this article"
	MsgArticleLocked      = "This article is currently being reviewed and cannot be changed."
	MsgConcurrentChange   = "The article was changed by another request. Please reload and try again."
	MsgReviewerRequired   = "Reviewer access required"
	MsgInvalidQueueStatus = "status must be PENDING_REVIEW or IN_REVIEW"
)

// reviewQueueStatuses are the statuses shown to reviewers.
var reviewQueueStatuses = []domain.ArticleStatus{domain.ArticleStatusPendingReview, domain.ArticleStatusInReview}

// ArticleService implements the article lifecycle.
type ArticleService struct {
	repo      repository.ArticleRepository
	publisher events.Publisher
	validator *validator.Validator
	content   *content.Processor

	now   func() time.Time
	newID func() string
}

// Option configures an ArticleService.
type Option func(*ArticleService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *ArticleService) { s.now = now }
}

// WithIDGenerator overrides the article id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *ArticleService) { s.newID = newID }
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	repo repository.ArticleRepository,
	publisher events.Publisher,
	v *validator.Validator,
	proc *content.Processor,
	opts ...Option,
) *ArticleService {
	s := &ArticleService{
		repo:      repo,
		publisher: publisher,
		validator: v,
		content:   proc,
		now:       time.Now,
		newID:     cuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new draft owned by the caller.
func (s *ArticleService) Create(ctx context.Context, actor domain.Principal, req *validator.ArticleRequest) (*domain.Article, error) {
	if err := s.validator.ValidateArticle(req); err != nil {
		return nil, validationError(err)
	}

	a := &domain.Article{
		ID:           s.newID(),
		Title:        domain.DefaultArticleTitle,
		IconPosition: domain.IconPositionLeft,
		Status:       domain.ArticleStatusDraft,
		AuthorID:     actor.UserID,
	}
	s.applyRequest(a, req)
	if req.ReadTime == nil {
		a.ReadTime = s.content.ReadTime(a.Content, a.ContentJSON)
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	logger.FromContext(ctx).Info("Article created",
		slog.String("article_id", a.ID),
		slog.String("author_id", a.AuthorID))
	return a, nil
}

// Get returns an article visible to the caller: their own, any article for
// reviewers, and published articles for everyone.
func (s *ArticleService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.AuthorID != actor.UserID && !actor.Role.CanReview() && a.Status != domain.ArticleStatusPublished {
		return nil, domain.NewError(domain.CodeForbidden, MsgArticleForbidden)
	}
	return a, nil
}

// Update changes the author-editable fields of the caller's article.
func (s *ArticleService) Update(ctx context.Context, actor domain.Principal, id string, req *validator.ArticleRequest) (*domain.Article, error) {
	if err := validator.ValidateID(id); err != nil {
		return nil, invalidIDError(err)
	}
	if err := s.validator.ValidateArticle(req); err != nil {
		return nil, validationError(err)
	}

	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkAuthorWrite(a, actor); err != nil {
		return nil, err
	}

	contentChanged := req.Content != nil || req.ContentJSON != nil
	s.applyRequest(a, req)
	if req.ReadTime == nil && contentChanged {
		a.ReadTime = s.content.ReadTime(a.Content, a.ContentJSON)
	}

	ok, err := s.repo.UpdateContent(ctx, a, authorEditableStatuses())
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if !ok {
		return nil, s.explainAuthorWriteMiss(ctx, id, actor)
	}
	return a, nil
}

// Delete removes the caller's article unless it is under review.
func (s *ArticleService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	a, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := checkAuthorWrite(a, actor); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id, authorEditableStatuses())
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !ok {
		return s.explainAuthorWriteMiss(ctx, id, actor)
	}

	logger.FromContext(ctx).Info("Article deleted", slog.String("article_id", id))
	return nil
}

// List returns one page of the caller's articles.
func (s *ArticleService) List(ctx context.Context, actor domain.Principal, query validator.ListArticlesQuery) (*domain.ArticleList, error) {
	page, statuses, err := s.validator.ParseListArticles(query)
	if err != nil {
		return nil, validationError(err)
	}
	return s.list(ctx, domain.ArticleFilter{AuthorID: actor.UserID, Statuses: statuses}, page)
}

// ListReviewQueue returns articles awaiting or under review, oldest submission first.
func (s *ArticleService) ListReviewQueue(ctx context.Context, actor domain.Principal, query validator.ListArticlesQuery) (*domain.ArticleList, error) {
	if !actor.Role.CanReview() {
		return nil, domain.NewError(domain.CodeForbidden, MsgReviewerRequired)
	}

	page, statuses, err := s.validator.ParseListArticles(query)
	if err != nil {
		return nil, validationError(err)
	}
	for _, st := range statuses {
		if !containsStatus(reviewQueueStatuses, st) {
			return nil, domain.NewValidationError(MsgInvalidQueueStatus, map[string]string{"status": MsgInvalidQueueStatus})
		}
	}
	if len(statuses) == 0 {
		statuses = reviewQueueStatuses
	}

	return s.list(ctx, domain.ArticleFilter{Statuses: statuses, OldestSubmittedFirst: true}, page)
}

// SubmitForReview moves the caller's article into the review queue.
func (s *ArticleService) SubmitForReview(ctx context.Context, actor domain.Principal, id string) (*SubmissionResult, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if guard, err := checkSubmission(a, actor); err != nil {
		metrics.ObserveGuardRejection(guard)
		logger.FromContext(ctx).Info("Review submission refused",
			slog.String("article_id", id),
			slog.String("guard", guard),
			slog.String("status", string(a.Status)))
		return nil, err
	}

	now := s.now().UTC()
	change := a.CurrentLifecycle()
	change.Status = domain.ArticleStatusPendingReview
	change.SubmittedAt = &now
	change.AdminFeedback = nil
	change.RejectedAt = nil
	change.ScheduledForDeletionAt = nil
	change.PublishedAt = nil

	updated, err := s.repo.TransitionStatus(ctx, id, submittableStatuses(), change)
	if err != nil {
		return nil, fmt.Errorf("submit article: %w", err)
	}
	if updated == nil {
		return nil, s.explainSubmissionMiss(ctx, id, actor)
	}

	message, eventType := MsgSubmitted, domain.EventArticleSubmitted
	if a.Status == domain.ArticleStatusPendingReview {
		message, eventType = MsgResubmitted, domain.EventArticleResubmitted
	}
	s.recordTransition(ctx, actor, a.Status, updated, eventType)

	return &SubmissionResult{Article: updated, Message: message}, nil
}

// Claim takes a pending article into review.
func (s *ArticleService) Claim(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error) {
	return s.review(ctx, actor, id, reviewTransition{
		verb:  "claimed",
		from:  []domain.ArticleStatus{domain.ArticleStatusPendingReview},
		to:    domain.ArticleStatusInReview,
		event: domain.EventArticleClaimed,
	})
}

// Publish makes an article under review public.
func (s *ArticleService) Publish(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error) {
	return s.review(ctx, actor, id, reviewTransition{
		verb:  "published",
		from:  []domain.ArticleStatus{domain.ArticleStatusInReview},
		to:    domain.ArticleStatusPublished,
		event: domain.EventArticlePublished,
		apply: func(c *domain.StatusChange, now time.Time) {
			c.PublishedAt = &now
			c.AdminFeedback = nil
		},
	})
}

// Reject returns an article under review to its author with feedback.
func (s *ArticleService) Reject(ctx context.Context, actor domain.Principal, id string, req *validator.RejectArticleRequest) (*domain.Article, error) {
	if !actor.Role.CanReview() {
		return nil, domain.NewError(domain.CodeForbidden, MsgReviewerRequired)
	}
	if err := s.validator.ValidateReject(req); err != nil {
		return nil, validationError(err)
	}

	feedback := *req.Feedback
	return s.review(ctx, actor, id, reviewTransition{
		verb:  "rejected",
		from:  []domain.ArticleStatus{domain.ArticleStatusInReview},
		to:    domain.ArticleStatusRejected,
		event: domain.EventArticleRejected,
		apply: func(c *domain.StatusChange, now time.Time) {
			c.RejectedAt = &now
			c.AdminFeedback = &feedback
		},
	})
}

// ScheduleDeletion marks an article for removal.
func (s *ArticleService) ScheduleDeletion(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error) {
	return s.review(ctx, actor, id, reviewTransition{
		verb: "scheduled for deletion",
		from: []domain.ArticleStatus{
			domain.ArticleStatusPublished,
			domain.ArticleStatusRejected,
			domain.ArticleStatusDraft,
		},
		to:    domain.ArticleStatusScheduledForDeletion,
		event: domain.EventArticleScheduledForDeletion,
		apply: func(c *domain.StatusChange, now time.Time) {
			c.ScheduledForDeletionAt = &now
		},
	})
}

// reviewTransition describes one reviewer-driven status change.
type reviewTransition struct {
	verb  string
	from  []domain.ArticleStatus
	to    domain.ArticleStatus
	event domain.ArticleEventType
	apply func(c *domain.StatusChange, now time.Time)
}

func (t reviewTransition) refuse(current domain.ArticleStatus) error {
	return domain.NewError(domain.CodeInvalidTransition,
		fmt.Sprintf("An article in status %s cannot be %s", current, t.verb))
}

func (s *ArticleService) review(ctx context.Context, actor domain.Principal, id string, t reviewTransition) (*domain.Article, error) {
	if !actor.Role.CanReview() {
		return nil, domain.NewError(domain.CodeForbidden, MsgReviewerRequired)
	}

	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !containsStatus(t.from, a.Status) {
		return nil, t.refuse(a.Status)
	}

	change := a.CurrentLifecycle()
	change.Status = t.to
	if t.apply != nil {
		t.apply(&change, s.now().UTC())
	}

	updated, err := s.repo.TransitionStatus(ctx, id, t.from, change)
	if err != nil {
		return nil, fmt.Errorf("transition article: %w", err)
	}
	if updated == nil {
		current, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if !containsStatus(t.from, current.Status) {
			return nil, t.refuse(current.Status)
		}
		return nil, domain.NewError(domain.CodeConflict, MsgConcurrentChange)
	}

	s.recordTransition(ctx, actor, a.Status, updated, t.event)
	return updated, nil
}

func (s *ArticleService) recordTransition(ctx context.Context, actor domain.Principal, from domain.ArticleStatus, a *domain.Article, eventType domain.ArticleEventType) {
	metrics.ObserveTransition(string(from), string(a.Status))

	requestID := logger.RequestIDFromContext(ctx)
	logger.FromContext(ctx).Info("Article status changed",
		slog.String("article_id", a.ID),
		slog.String("actor_id", actor.UserID),
		slog.String("from", string(from)),
		slog.String("to", string(a.Status)))

	events.Emit(ctx, s.publisher, domain.ArticleEvent{
		Type:       eventType,
		ArticleID:  a.ID,
		AuthorID:   a.AuthorID,
		ActorID:    actor.UserID,
		FromStatus: from,
		ToStatus:   a.Status,
		RequestID:  requestID,
		OccurredAt: s.now().UTC(),
	})
}

// explainSubmissionMiss turns a conditional write that matched nothing into the
// error the caller would have seen had it read the current row.
func (s *ArticleService) explainSubmissionMiss(ctx context.Context, id string, actor domain.Principal) error {
	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if _, err := checkSubmission(current, actor); err != nil {
		return err
	}
	return domain.NewError(domain.CodeConflict, MsgConcurrentChange)
}

func (s *ArticleService) explainAuthorWriteMiss(ctx context.Context, id string, actor domain.Principal) error {
	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := checkAuthorWrite(current, actor); err != nil {
		return err
	}
	return domain.NewError(domain.CodeConflict, MsgConcurrentChange)
}

func (s *ArticleService) list(ctx context.Context, filter domain.ArticleFilter, page domain.Page) (*domain.ArticleList, error) {
	articles, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &domain.ArticleList{
		Articles: articles,
		Total:    total,
		Page:     page.Page,
		Limit:    page.Limit,
	}, nil
}

// load validates the id and fetches the article, mapping absence to NOT_FOUND.
func (s *ArticleService) load(ctx context.Context, id string) (*domain.Article, error) {
	if err := validator.ValidateID(id); err != nil {
		return nil, invalidIDError(err)
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return nil, domain.NewError(domain.CodeNotFound, MsgArticleNotFound)
	}
	return a, nil
}

// applyRequest copies the fields present in req onto a and empties the ones
// sent blank. Content is sanitized.
func (s *ArticleService) applyRequest(a *domain.Article, req *validator.ArticleRequest) {
	if req.Cleared(validator.FieldExcerpt) {
		a.Excerpt = ""
	}
	if req.Cleared(validator.FieldCategory) {
		a.Category = ""
	}
	if req.Cleared(validator.FieldIconName) {
		a.IconName = ""
	}
	if req.Cleared(validator.FieldCover) {
		a.Cover = ""
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Excerpt != nil {
		a.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		sanitized := s.content.Sanitize(*req.Content)
		a.Content = &sanitized
	}
	if req.ContentJSON != nil {
		a.ContentJSON = req.ContentJSON
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.IconName != nil {
		a.IconName = *req.IconName
	}
	if req.IconPosition != nil {
		a.IconPosition = domain.IconPosition(*req.IconPosition)
	}
	if req.IconColor != nil {
		a.IconColor = *req.IconColor
	}
	if req.Cover != nil {
		a.Cover = *req.Cover
	}
	if req.ReadTime != nil {
		a.ReadTime = *req.ReadTime
	}
}

func checkAuthorWrite(a *domain.Article, actor domain.Principal) error {
	if a.AuthorID != actor.UserID {
		return domain.NewError(domain.CodeForbidden, MsgArticleForbidden)
	}
	if a.Status.LockedForAuthor() {
		return domain.NewError(domain.CodeInReview, MsgArticleLocked)
	}
	return nil
}

func containsStatus(statuses []domain.ArticleStatus, s domain.ArticleStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func validationError(err error) error {
	fields := validator.FieldErrors(err)
	return &domain.Error{
		Code:    domain.CodeValidation,
		Message: validator.FirstMessage(fields),
		Fields:  fields,
		Err:     err,
	}
}

func invalidIDError(err error) error {
	return &domain.Error{
		Code:    domain.CodeValidation,
		Message: err.Error(),
		Fields:  map[string]string{"id": err.Error()},
		Err:     err,
	}
}
