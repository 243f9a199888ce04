package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const messageSuccess = "success"

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Message: messageSuccess, Data: payload})
}

// RespondError writes an explicit status and code. Prefer Error for service errors.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, APIError{Message: msg, Code: code})
}
