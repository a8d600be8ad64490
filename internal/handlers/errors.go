package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNoMapper):
		return http.StatusUnprocessableEntity
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Server errors are logged and hidden from the caller.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
