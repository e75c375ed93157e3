package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error to the console's HTTP answer. Upstream
// client errors keep their status and message so the operator sees exactly
// what the backend said.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var upErr *apperrors.UpstreamError
	switch {
	case errors.Is(err, apperrors.ErrSuperseded):
		logger.Info("Screen refresh superseded", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &upErr):
		status := upErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			logger.Error("Upstream call failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Upstream rejected call", slog.Int("upstream_status", upErr.Status), slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": upErr.Message})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnavailableAction):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// respondBindError answers a request whose body or query could not be bound.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	body := gin.H{"error": "Invalid request format: " + err.Error()}
	if fields := processValidationErrors(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}

// processValidationErrors lists failed fields with the tag they failed on.
func processValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	errorResponse := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}
