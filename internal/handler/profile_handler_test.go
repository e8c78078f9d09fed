package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/mocks"
	"remediation-portal/internal/validator"
)

func TestProfileHandler(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		h := NewProfileHandler(svc)
		router := newRouter(&testAuthor)
		router.GET("/api/profile", h.Get)

		svc.EXPECT().Get(mock.Anything, testAuthor).Return(&domain.User{ID: testUserID, Email: "ada@example.com", Name: "Ada"}, nil)

		w := serve(router, http.MethodGet, "/api/profile", "")
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]interface{})
		assert.Equal(t, "ada@example.com", user["email"])
	})

	t.Run("update", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		h := NewProfileHandler(svc)
		router := newRouter(&testAuthor)
		router.PATCH("/api/profile", h.Update)

		svc.EXPECT().
			Update(mock.Anything, testAuthor, mock.MatchedBy(func(req *validator.UpdateProfileRequest) bool {
				return req.Name != nil && *req.Name == "Ada" && req.Phone == nil
			})).
			Return(&domain.User{ID: testUserID, Name: "Ada"}, nil)

		w := serve(router, http.MethodPatch, "/api/profile", `{"name":"Ada"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update with invalid phone", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		h := NewProfileHandler(svc)
		router := newRouter(&testAuthor)
		router.PATCH("/api/profile", h.Update)

		svc.EXPECT().
			Update(mock.Anything, testAuthor, mock.Anything).
			Return(nil, domain.NewValidationError("Invalid phone number format", map[string]string{"phone": "Invalid phone number format"}))

		w := serve(router, http.MethodPatch, "/api/profile", `{"name":"Ada","phone":"call me"}`)
		body := requireErrorBody(t, w, http.StatusBadRequest, domain.CodeValidation)
		assert.Equal(t, map[string]interface{}{"phone": "Invalid phone number format"}, body["details"])
	})
}
