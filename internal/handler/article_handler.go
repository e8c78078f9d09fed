package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/service"
	"remediation-portal/internal/validator"
)

// ArticleHandler handles the author-facing article endpoints.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// SubmissionResponse is the article summary returned by a review submission.
type SubmissionResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	SubmittedAt *string `json:"submittedAt"`
}

func toSubmissionResponse(result *service.SubmissionResult) SubmissionResponse {
	a := result.Article
	response := SubmissionResponse{
		ID:     a.ID,
		Status: string(a.Status),
	}
	if a.SubmittedAt != nil {
		submittedAt := a.SubmittedAt.UTC().Format(TimeFormat)
		response.SubmittedAt = &submittedAt
	}
	return response
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req validator.ArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"article": article})
}

// List handles GET /api/articles?page=&limit=&status=
func (h *ArticleHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.articleService.List(c.Request.Context(), actor, listQuery(c))
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

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"article": article})
}

// Update handles PATCH /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req validator.ArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"article": article})
}

// Delete handles DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Article deleted"})
}

// Submit handles POST /api/articles/:id/submit
func (h *ArticleHandler) Submit(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.articleService.SubmitForReview(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"article": toSubmissionResponse(result),
		"message": result.Message,
	})
}

func listQuery(c *gin.Context) validator.ListArticlesQuery {
	return validator.ListArticlesQuery{
		Page:   optionalQuery(c, "page"),
		Limit:  optionalQuery(c, "limit"),
		Status: c.Query("status"),
	}
}
