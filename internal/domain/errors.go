package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTokenNotFound   = errors.New("token not found")
	ErrTierUnavailable = errors.New("storage tier unavailable")
	ErrSignInRequired  = errors.New("sign in required")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// Form validation errors.
var (
	ErrEmailRequired     = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrFirstNameTooShort = errors.New("first name is too short")
	ErrLastNameTooShort  = errors.New("last name is too short")
)

type InvariantError struct {
	Slice  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s invariant broken: %s", e.Slice, e.Detail)
}

// APIError is a non-2xx answer from the bank backend. Message holds the
// backend's own explanation when the response carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

// BackendMessage extracts the backend explanation carried by err, if any.
func BackendMessage(err error) (string, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		return "", false
	}
	return apiErr.Message, true
}
