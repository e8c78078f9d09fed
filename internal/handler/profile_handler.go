package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/service"
	"remediation-portal/internal/validator"
)

// ProfileHandler handles the caller's profile.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user})
}

// Update handles PATCH /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req validator.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user})
}
