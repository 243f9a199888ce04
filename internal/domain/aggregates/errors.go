package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes aggregate failure semantics across domains.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeForbidden          ErrorCode = "forbidden"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Reason is the business reason code surfaced to clients.
type Reason string

const (
	ReasonMemberNotFound       Reason = "MEMBER_NOT_FOUND"
	ReasonMainCategoryNotFound Reason = "MAIN_CATEGORY_NOT_FOUND"
	ReasonMidCategoryNotFound  Reason = "MID_CATEGORY_NOT_FOUND"
	ReasonSubCategoryNotFound  Reason = "SUB_CATEGORY_NOT_FOUND"
	ReasonPostNotFound         Reason = "POST_NOT_FOUND"
	ReasonLinkNotFound         Reason = "LINK_NOT_FOUND"

	ReasonInvalidRequest        Reason = "INVALID_REQUEST"
	ReasonInvalidExchangeType   Reason = "INVALID_EXCHANGE_TYPE"
	ReasonInvalidExchangePeriod Reason = "INVALID_EXCHANGE_PERIOD"
	ReasonInvalidExchangeTime   Reason = "INVALID_EXCHANGE_TIME"
	ReasonInvalidNickname       Reason = "INVALID_NICKNAME"
	ReasonAlreadyLiked          Reason = "ALREADY_LIKED"
	ReasonNotLiked              Reason = "NOT_LIKED"
	ReasonOwnerAlreadyAssigned  Reason = "OWNER_ALREADY_ASSIGNED"
	ReasonUnauthorized          Reason = "UNAUTHORIZED"
	ReasonInternal              Reason = "INTERNAL_ERROR"
)

var reasonMessages = map[Reason]string{
	ReasonMemberNotFound:        "member not found",
	ReasonMainCategoryNotFound:  "main category not found",
	ReasonMidCategoryNotFound:   "mid category not found",
	ReasonSubCategoryNotFound:   "sub category not found",
	ReasonPostNotFound:          "post not found",
	ReasonLinkNotFound:          "link not found",
	ReasonInvalidRequest:        "invalid request",
	ReasonInvalidExchangeType:   "invalid exchange type",
	ReasonInvalidExchangePeriod: "invalid exchange period",
	ReasonInvalidExchangeTime:   "invalid exchange time",
	ReasonInvalidNickname:       "invalid nickname",
	ReasonAlreadyLiked:          "post already liked",
	ReasonNotLiked:              "post not liked",
	ReasonOwnerAlreadyAssigned:  "post owner already assigned",
	ReasonUnauthorized:          "authentication required",
	ReasonInternal:              "internal error",
}

// Message returns the default human readable text for r.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return strings.ToLower(strings.ReplaceAll(string(r), "_", " "))
}

// Error is the canonical aggregate error wrapper.
type Error struct {
	Code    ErrorCode
	Reason  Reason
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// NotFound reports a failed lookup of the entity kind named by reason.
func NotFound(op string, reason Reason) error {
	return &Error{Code: CodeNotFound, Reason: reason, Op: strings.TrimSpace(op), Message: reason.Message()}
}

// Validation reports unusable caller input.
func Validation(op string, reason Reason, msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = reason.Message()
	}
	return &Error{Code: CodeValidation, Reason: reason, Op: strings.TrimSpace(op), Message: msg}
}

// Business builds an error with an arbitrary code and reason.
func Business(code ErrorCode, op string, reason Reason) error {
	return &Error{Code: code, Reason: reason, Op: strings.TrimSpace(op), Message: reason.Message()}
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// ReasonOf extracts the business reason when available.
func ReasonOf(err error) Reason {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Reason
}
