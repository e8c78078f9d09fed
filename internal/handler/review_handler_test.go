package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/middleware"
	"remediation-portal/internal/mocks"
	"remediation-portal/internal/validator"
)

func reviewRouter(t *testing.T, p *domain.Principal) (*mocks.MockArticleService, *gin.Engine) {
	svc := mocks.NewMockArticleService(t)
	h := NewReviewHandler(svc)

	router := newRouter(p)
	review := router.Group("/api/review/articles", middleware.RequireReviewer())
	review.GET("", h.Queue)
	review.POST("/:id/claim", h.Claim)
	review.POST("/:id/publish", h.Publish)
	review.POST("/:id/reject", h.Reject)
	review.POST("/:id/schedule-deletion", h.ScheduleDeletion)
	return svc, router
}

func TestReviewHandler_Queue(t *testing.T) {
	svc, router := reviewRouter(t, &testReviewer)
	svc.EXPECT().
		ListReviewQueue(mock.Anything, testReviewer, validator.ListArticlesQuery{}).
		Return(&domain.ArticleList{Articles: []domain.Article{}, Page: 1, Limit: 20}, nil)

	w := serve(router, http.MethodGet, "/api/review/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 0, body["total"])
	assert.Equal(t, []interface{}{}, body["articles"])
}

func TestReviewHandler_Transitions(t *testing.T) {
	t.Run("claim", func(t *testing.T) {
		svc, router := reviewRouter(t, &testReviewer)
		svc.EXPECT().
			Claim(mock.Anything, testReviewer, testArticleID).
			Return(&domain.Article{ID: testArticleID, Status: domain.ArticleStatusInReview}, nil)

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/claim", "")
		require.Equal(t, http.StatusOK, w.Code)
		article := decodeBody(t, w)["article"].(map[string]interface{})
		assert.Equal(t, "IN_REVIEW", article["status"])
	})

	t.Run("publish from wrong status", func(t *testing.T) {
		svc, router := reviewRouter(t, &testReviewer)
		svc.EXPECT().
			Publish(mock.Anything, testReviewer, testArticleID).
			Return(nil, domain.NewError(domain.CodeInvalidTransition, "An article in status DRAFT cannot be published"))

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/publish", "")
		requireErrorBody(t, w, http.StatusConflict, domain.CodeInvalidTransition)
	})

	t.Run("reject forwards feedback", func(t *testing.T) {
		svc, router := reviewRouter(t, &testReviewer)
		svc.EXPECT().
			Reject(mock.Anything, testReviewer, testArticleID, mock.MatchedBy(func(req *validator.RejectArticleRequest) bool {
				return req.Feedback != nil && *req.Feedback == "Cite the CVE"
			})).
			Return(&domain.Article{ID: testArticleID, Status: domain.ArticleStatusRejected}, nil)

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/reject", `{"feedback":"Cite the CVE"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject with malformed body", func(t *testing.T) {
		_, router := reviewRouter(t, &testReviewer)

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/reject", `feedback`)
		requireErrorBody(t, w, http.StatusBadRequest, domain.CodeValidation)
	})

	t.Run("schedule deletion", func(t *testing.T) {
		svc, router := reviewRouter(t, &testReviewer)
		svc.EXPECT().
			ScheduleDeletion(mock.Anything, testReviewer, testArticleID).
			Return(&domain.Article{ID: testArticleID, Status: domain.ArticleStatusScheduledForDeletion}, nil)

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/schedule-deletion", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("authors are turned away before the service", func(t *testing.T) {
		_, router := reviewRouter(t, &testAuthor)

		w := serve(router, http.MethodPost, "/api/review/articles/"+testArticleID+"/claim", "")
		requireErrorBody(t, w, http.StatusForbidden, domain.CodeForbidden)
	})
}
