package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	"github.com/mentry-app/mentry-server/internal/handler/http/middleware"
	"github.com/mentry-app/mentry-server/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// CallerIdentity extracts the verified uid and email set by the auth
// middleware. It writes the 401 response itself when the context is missing.
func CallerIdentity(c *gin.Context) (uid, email string, ok bool) {
	uidVal, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", "", false
	}
	uid, ok = uidVal.(string)
	if !ok || uid == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", "", false
	}
	if emailVal, exists := c.Get(middleware.ContextUserEmailKey); exists {
		email, _ = emailVal.(string)
	}
	return uid, email, true
}

// UsecaseErrorHandler maps sentinel usecase errors to their HTTP statuses.
// Anything unrecognized is a store/provider failure and returns a generic 500.
func UsecaseErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contract.ErrLessonNotFound):
		ErrorHandler(c, http.StatusNotFound, "Lesson not found")
	case errors.Is(err, contract.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase.ErrPrivateLesson):
		ErrorHandler(c, http.StatusForbidden, "This lesson is private")
	case errors.Is(err, usecase.ErrPremiumRequired):
		ErrorHandler(c, http.StatusForbidden, "Premium access required")
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "You are not allowed to perform this action")
	case errors.Is(err, usecase.ErrInvalidAction):
		ErrorHandler(c, http.StatusBadRequest, "Invalid action specified")
	case errors.Is(err, usecase.ErrInvalidPagination):
		ErrorHandler(c, http.StatusBadRequest, "Invalid pagination parameters")
	case errors.Is(err, usecase.ErrAlreadyPremium):
		ErrorHandler(c, http.StatusBadRequest, "User already has premium access")
	case errors.Is(err, usecase.ErrEmptyComment):
		ErrorHandler(c, http.StatusBadRequest, "Comment content cannot be empty")
	case errors.Is(err, usecase.ErrReasonTooShort):
		ErrorHandler(c, http.StatusBadRequest, "Invalid or missing reason for report")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
