// Package apperr defines the typed error taxonomy shared by services,
// repositories and the HTTP boundary. Every business failure is one of
// these values (or wraps one); the boundary translates the code into an
// HTTP status and a localized message.
package apperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Code   string // stable, operator-facing code (also the default message key)
	Status int
	Key    string // i18n message key, defaults to Code
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap returns a copy of e carrying the underlying cause. The cause is
// for the operational log only and never reaches the client.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Code: e.Code, Status: e.Status, Key: e.Key, cause: cause}
}

// MessageKey is the catalog key the boundary should localize.
func (e *Error) MessageKey() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Code
}

func New(code string, status int) *Error {
	return &Error{Code: code, Status: status}
}

// Validation reports the first violated constraint of a request. The code
// is always VALIDATION_ERROR; key identifies the constraint.
func Validation(key string) *Error {
	return &Error{Code: "VALIDATION_ERROR", Status: http.StatusBadRequest, Key: key}
}

var (
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized)
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden)
	ErrTokenExpired       = New("TOKEN_EXPIRED", http.StatusUnauthorized)
	ErrTokenInvalid       = New("TOKEN_INVALID", http.StatusUnauthorized)
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized)

	ErrEmailInUse      = New("EMAIL_IN_USE", http.StatusConflict)
	ErrAlreadyReviewed = New("ALREADY_REVIEWED", http.StatusConflict)
	ErrAlreadyFavorite = New("ALREADY_FAVORITE", http.StatusConflict)

	ErrUserNotFound       = New("USER_NOT_FOUND", http.StatusNotFound)
	ErrRestaurantNotFound = New("RESTAURANT_NOT_FOUND", http.StatusNotFound)
	ErrReviewNotFound     = New("REVIEW_NOT_FOUND", http.StatusNotFound)

	ErrTooManyRequests = New("TOO_MANY_REQUESTS", http.StatusTooManyRequests)
	ErrInvalidJSON     = New("INVALID_JSON", http.StatusBadRequest)
	ErrAdminStats      = New("ADMIN_STATS_ERROR", http.StatusInternalServerError)
	ErrInternal        = New("INTERNAL_ERROR", http.StatusInternalServerError)
)
