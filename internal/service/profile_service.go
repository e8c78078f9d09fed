package service

import (
	"context"
	"fmt"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/repository"
	"remediation-portal/internal/validator"
)

const MsgUserNotFound = "User not found"

// ProfileService reads and updates the caller's own profile.
type ProfileService struct {
	userRepo  repository.UserRepository
	validator *validator.Validator
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, v *validator.Validator) *ProfileService {
	return &ProfileService{userRepo: userRepo, validator: v}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, actor domain.Principal) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if u == nil {
		return nil, domain.NewError(domain.CodeNotFound, MsgUserNotFound)
	}
	return u, nil
}

// Update replaces the caller's editable profile fields.
func (s *ProfileService) Update(ctx context.Context, actor domain.Principal, req *validator.UpdateProfileRequest) (*domain.User, error) {
	if err := s.validator.ValidateProfile(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.userRepo.UpdateProfile(ctx, actor.UserID, domain.ProfileUpdate{
		Name:    *req.Name,
		Phone:   req.Phone,
		Bio:     req.Bio,
		Company: req.Company,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if u == nil {
		return nil, domain.NewError(domain.CodeNotFound, MsgUserNotFound)
	}
	return u, nil
}
