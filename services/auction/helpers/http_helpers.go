package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	"github.com/brandonecarr/bidwars/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// BearerToken extracts the opaque bearer token from the Authorization header
func BearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAlreadyHighestBidder):
		return http.StatusConflict, "you already have the highest bid"
	case errors.Is(err, auctionerrors.ErrRoundAlreadyActive):
		return http.StatusConflict, "another round is already active"
	case errors.Is(err, auctionerrors.ErrNameTaken):
		return http.StatusConflict, "that name is already taken in this game"
	case errors.Is(err, auctionerrors.ErrRoundNotActive):
		return http.StatusBadRequest, "round is not active"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusBadRequest, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrSessionCompleted):
		return http.StatusBadRequest, "this game has already ended"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrPersistenceFailure):
		return http.StatusInternalServerError, "failed to save change"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
