package domain

import "time"

// Role is the authorization role carried by a session.
type Role string

const (
	RoleUser     Role = "user"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleUser, RoleReviewer, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}

// CanReview reports whether the role may act on the review queue.
func (r Role) CanReview() bool {
	return r == RoleReviewer || r == RoleAdmin
}

// User represents an account that owns articles.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   Role
}

// ProfileUpdate carries the normalized profile fields a user may change.
type ProfileUpdate struct {
	Name    string
	Phone   *string
	Bio     *string
	Company *string
}
