package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
)

// Error maps a service error onto a status code and the business reason.
// Internal failures never leak their cause to the client.
func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	reason := domainagg.ReasonOf(err)
	if reason == "" {
		switch code := domainagg.CodeOf(err); code {
		case domainagg.CodeUnauthorized:
			reason = domainagg.ReasonUnauthorized
		case domainagg.CodeValidation:
			reason = domainagg.ReasonInvalidRequest
		case "":
			reason = domainagg.ReasonInternal
		default:
			reason = domainagg.Reason(strings.ToUpper(string(code)))
		}
	}
	msg := reason.Message()
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) && aggErr.Code == domainagg.CodeValidation && aggErr.Message != "" {
		msg = aggErr.Message
	}
	if status == http.StatusInternalServerError {
		reason = domainagg.ReasonInternal
		msg = domainagg.ReasonInternal.Message()
	}
	c.AbortWithStatusJSON(status, APIError{Message: msg, Code: string(reason)})
}

func StatusOf(err error) int {
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation:
		return http.StatusBadRequest
	case domainagg.CodeUnauthorized:
		return http.StatusUnauthorized
	case domainagg.CodeForbidden:
		return http.StatusForbidden
	case domainagg.CodeNotFound:
		return http.StatusNotFound
	case domainagg.CodeConflict, domainagg.CodeInvariantViolation:
		return http.StatusConflict
	case domainagg.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
