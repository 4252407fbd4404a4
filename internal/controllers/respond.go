package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/middleware"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindPermission:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders any service error as a JSON error body.
// Internal errors never leak their message to clients.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	message := err.Error()
	if kind == apperrors.KindInternal {
		message = "internal server error"
	}

	body := gin.H{
		"code":  kind,
		"error": message,
	}
	if fields := apperrors.FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}

	c.JSON(statusFor(kind), body)
}

// respondBindError renders a request-body binding failure as a 400.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    apperrors.KindValidation,
		"error":   "invalid request body",
		"details": err.Error(),
	})
}

// callerID returns the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  apperrors.KindAuthentication,
			"error": "authentication required",
		})
		c.Abort()
		return "", false
	}
	return id.(string), true
}
