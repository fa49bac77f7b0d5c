// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []string `json:"errors"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeValidationErrors(c *gin.Context, errs []string) {
	writeJSON(c, http.StatusBadRequest, validationResponse{Errors: errs})
}

func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrInvalidDestination):
		writeError(c, http.StatusUnprocessableEntity, "Invalid destination. Please enter a valid city name.")
	default:
		// Remaining planner failures are upstream: geocoding, places or the
		// generation call itself.
		writeError(c, http.StatusBadGateway, "failed to generate itinerary")
	}
}
