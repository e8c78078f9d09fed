package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/logger"
	"remediation-portal/internal/middleware"
)

// statusFor maps an error code to its HTTP status.
func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeInReview:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict, domain.CodeInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a success body with the request id attached.
func respond(c *gin.Context, status int, body gin.H) {
	body["requestId"] = middleware.GetRequestID(c)
	c.JSON(status, body)
}

// respondError writes the failure envelope for err. Anything that is not a
// domain.Error is logged and reported as an opaque internal error.
func respondError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	var de *domain.Error
	if !errors.As(err, &de) || statusFor(de.Code) == http.StatusInternalServerError {
		logger.WithRequestID(requestID).Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     msgInternalError,
			"code":      domain.CodeInternal,
			"requestId": requestID,
		})
		return
	}

	body := gin.H{
		"error":     de.Message,
		"code":      de.Code,
		"requestId": requestID,
	}
	if len(de.Fields) > 0 {
		body["details"] = de.Fields
	}
	c.JSON(statusFor(de.Code), body)
}

// principal returns the authenticated caller or writes a 401.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
	}
	return p, ok
}

// bindJSON decodes the request body, writing a 400 on malformed input.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, &domain.Error{
			Code:    domain.CodeValidation,
			Message: msgInvalidBody,
			Err:     err,
		})
		return false
	}
	return true
}

// optionalQuery returns nil for an absent parameter so defaults apply.
func optionalQuery(c *gin.Context, key string) interface{} {
	if v, ok := c.GetQuery(key); ok {
		return v
	}
	return nil
}
