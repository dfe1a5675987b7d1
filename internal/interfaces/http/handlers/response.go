// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/checkout"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

// statusFor maps an error kind to its HTTP status
func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindAuth, apperror.KindLoginRequired:
		return http.StatusUnauthorized
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindPayment:
		return http.StatusPaymentRequired
	case apperror.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal errors are not echoed.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := apperror.KindOf(err)
	body := gin.H{"code": apperror.CodeOf(err)}

	var appErr *apperror.Error
	switch {
	case kind == apperror.KindInternal || kind == apperror.KindCorruptState:
		body["error"] = "Internal server error"
	case errors.As(err, &appErr):
		body["error"] = appErr.Message
	default:
		body["error"] = err.Error()
	}
	if kind == apperror.KindLoginRequired {
		body["redirect"] = checkout.LoginRedirect
	}

	c.JSON(statusFor(kind), body)
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}
