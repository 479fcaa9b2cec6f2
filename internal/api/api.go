package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalplate/backend/internal/service"
)

// SessionHeader carries the session id. Requests without it use the fixed
// guest session.
const SessionHeader = "X-Session-ID"

// sessionID extracts the session id from the request.
func sessionID(c *gin.Context) string {
	return c.GetHeader(SessionHeader)
}

// abortWithError maps a service error to an HTTP status and JSON body and
// records it for the error middleware's log line.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidPortion):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrFoodNotFound), errors.Is(err, service.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrResourceLoad):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
