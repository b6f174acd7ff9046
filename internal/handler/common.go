package handler

import (
	"context"
	"errors"
	"net/http"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/validation"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// bindPageContext reads the :context route segment.
func bindPageContext(c *gin.Context) (model.PageContext, bool) {
	page, err := model.ParsePageContext(c.Param("context"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown screen"})
		return "", false
	}
	return page, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", RequestIDFrom(c)),
		zap.Error(err),
	)

	var fieldErrors validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		log.Info("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "Validation failed",
			"kind":        "Validation",
			"fieldErrors": fieldErrors,
		})
	case errors.Is(err, apperrors.ErrMissingIdentifier):
		log.Warn("Missing identifier")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing identifier", "kind": "MissingIdentifier"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrPageOutOfRange):
		log.Warn("Page out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page out of range"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrSubmissionNotFound):
		log.Warn("Submission not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
	case errors.Is(err, apperrors.ErrSuperseded):
		log.Debug("Superseded by a newer request")
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer request"})
	case errors.Is(err, apperrors.ErrSubmissionInProgress):
		log.Warn("Submission in progress")
		c.JSON(http.StatusConflict, gin.H{"error": "Submission already in progress"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Warn("No active session")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
	case errors.Is(err, context.Canceled):
		log.Info("Request canceled")
		c.Status(499)
	case apperrors.KindName(err) != "":
		log.Error("Remote operation failed", zap.Int("remote_status", apperrors.StatusCode(err)))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": apperrors.UserMessage(err),
			"kind":  apperrors.KindName(err),
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
