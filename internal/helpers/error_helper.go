package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every API error: not-found,
// invalid credentials, invalid state and request validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}
