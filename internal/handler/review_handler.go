package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/service"
	"remediation-portal/internal/validator"
)

// ReviewHandler handles the reviewer queue and its transitions.
type ReviewHandler struct {
	articleService service.ArticleServiceInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(articleService service.ArticleServiceInterface) *ReviewHandler {
	return &ReviewHandler{articleService: articleService}
}

// Queue handles GET /api/review/articles
func (h *ReviewHandler) Queue(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.articleService.ListReviewQueue(c.Request.Context(), actor, listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"articles": list.Articles,
		"total":    list.Total,
		"page":     list.Page,
		"limit":    list.Limit,
	})
}

// Claim handles POST /api/review/articles/:id/claim
func (h *ReviewHandler) Claim(c *gin.Context) {
	h.transition(c, h.articleService.Claim)
}

// Publish handles POST /api/review/articles/:id/publish
func (h *ReviewHandler) Publish(c *gin.Context) {
	h.transition(c, h.articleService.Publish)
}

// ScheduleDeletion handles POST /api/review/articles/:id/schedule-deletion
func (h *ReviewHandler) ScheduleDeletion(c *gin.Context) {
	h.transition(c, h.articleService.ScheduleDeletion)
}

// Reject handles POST /api/review/articles/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	var req validator.RejectArticleRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, func(ctx context.Context, actor domain.Principal, id string) (*domain.Article, error) {
		return h.articleService.Reject(ctx, actor, id, &req)
	})
}

func (h *ReviewHandler) transition(c *gin.Context, apply func(context.Context, domain.Principal, string) (*domain.Article, error)) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	article, err := apply(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"article": article})
}
