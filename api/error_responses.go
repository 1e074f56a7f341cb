package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the inner error payload of an error response.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// ErrorResponse is the envelope every error response uses:
// {"error": {"message": ..., "status": ...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SendError sends a client error with the given status and message.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Message: message}})
}

// SendInternalError sends a 500 response. The message defaults to a
// generic internal-error string when the cause carries none.
func SendInternalError(c *gin.Context, err error) {
	message := "Internal Server Error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: ErrorBody{Message: message, Status: http.StatusInternalServerError},
	})
}
