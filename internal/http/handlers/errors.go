package handlers

import (
	"net/http"

	"loadhaul/internal/domain"
	"loadhaul/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps engine errors to HTTP responses. Geocoder outages
// are the upstream's fault, hence 502.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsInvalidZip(err):
		respondError(c, http.StatusBadRequest, "invalid_zip", err.Error())
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsGeocodeUnavailable(err):
		respondError(c, http.StatusBadGateway, "geocode_unavailable", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
