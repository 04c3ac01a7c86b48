// Package handlers contains the gin handlers and shared JSON/error helpers.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/itinerary"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/user"
)

type errorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerationError maps AI pipeline failures. Provider and parse
// failures are upstream problems, not client mistakes, so both map to 502;
// parse failures carry a hint since a retry or a shorter trip usually fixes
// truncated output.
func writeGenerationError(c *gin.Context, err error) {
	var parseErr *ai.ParseError
	if errors.As(err, &parseErr) {
		writeJSON(c, http.StatusBadGateway, errorResponse{
			Error:      fmt.Sprintf("the AI returned a response that could not be parsed (%d characters)", parseErr.Length),
			Suggestion: "try again, or request a shorter trip; very long itineraries can be cut off mid-response",
		})
		return
	}
	var provErr *ai.ProviderError
	if errors.As(err, &provErr) {
		writeError(c, http.StatusBadGateway, "the AI service is unavailable, try again shortly")
		return
	}
	writeTripError(c, err)
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrUsernameTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
