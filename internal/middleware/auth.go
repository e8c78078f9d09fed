package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/domain"
)

const (
	// PrincipalKey is the context key for the authenticated caller.
	PrincipalKey = "principal"
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session"
)

// TokenVerifier resolves a session token to the caller it identifies.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// RequireSession rejects requests without a valid session token.
// The token is read from an Authorization Bearer header, falling back to the session cookie.
func RequireSession(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token == "" {
			abortWith(c, http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required")
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, domain.CodeUnauthorized, "Invalid or expired session")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireReviewer rejects callers whose role may not act on the review queue.
// It must run after RequireSession.
func RequireReviewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required")
			return
		}
		if !principal.Role.CanReview() {
			abortWith(c, http.StatusForbidden, domain.CodeForbidden, "Reviewer access required")
			return
		}
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated caller from the gin context.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	if v, exists := c.Get(PrincipalKey); exists {
		if p, ok := v.(domain.Principal); ok {
			return p, true
		}
	}
	return domain.Principal{}, false
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortWith(c *gin.Context, status int, code domain.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":     message,
		"code":      code,
		"requestId": GetRequestID(c),
	})
}
