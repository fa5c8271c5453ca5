package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thalibook/services/booking"
	"thalibook/utils"
)

// respondError maps engine error kinds to HTTP status codes. Everything in
// the taxonomy is recoverable at the caller; only unclassified errors and
// data-integrity faults surface as 500s.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrNoAvailability):
		utils.JSONError(c, http.StatusUnprocessableEntity, "no availability", err.Error())
	case errors.Is(err, booking.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, booking.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, "already cancelled", err.Error())
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, booking.ErrInvalidRequest):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, booking.ErrDataIntegrity):
		utils.GetLogger().Error("data integrity fault", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "persisted scheduling data is malformed")
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "an unexpected error occurred")
	}
}
