package api

import (
	"errors"
	"net/http"

	"github.com/UnknownOlympus/pitstop/internal/service"
	"github.com/UnknownOlympus/pitstop/internal/vehicle"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid vehicle id"
	msgInternal         = "internal error"
)

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Details: details})
}

// handleError maps domain errors to responses and reports whether err was non-nil.
func handleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var lookupErr *service.LookupError
	switch {
	case errors.As(err, &lookupErr):
		respondError(c, lookupErr.HTTPStatus(), lookupErr.Message, nil)
	case errors.Is(err, service.ErrSuperseded):
		respondError(c, http.StatusConflict, service.ErrSuperseded.Error(), nil)
	case errors.Is(err, vehicle.ErrNotFound):
		respondError(c, http.StatusNotFound, vehicle.ErrNotFound.Error(), nil)
	case errors.Is(err, vehicle.ErrInvalid):
		respondError(c, http.StatusBadRequest, msgValidationFailed, err.Error())
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, msgInternal, nil)
	}

	return true
}
