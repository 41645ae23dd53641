package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 6
	minNameLength     = 2
)

var emailPattern = regexp.MustCompile(`^([\w-]+(?:\.[\w-]+)*)@((?:[\w-]+\.)*\w[\w-]{0,66})\.([a-zA-Z]{2,6}(?:\.[a-zA-Z]{2})?)$`)

type Credentials struct {
	Email    string
	Password string
}

// Validate checks the sign-in form constraints.
func (c Credentials) Validate() error {
	return errors.Join(validateEmail(c.Email), validatePassword(c.Password))
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Validate checks the sign-up form constraints.
func (r Registration) Validate() error {
	var errs []error
	if utf8.RuneCountInString(strings.TrimSpace(r.FirstName)) < minNameLength {
		errs = append(errs, ErrFirstNameTooShort)
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.LastName)) < minNameLength {
		errs = append(errs, ErrLastNameTooShort)
	}
	errs = append(errs, validateEmail(r.Email), validatePassword(r.Password))
	return errors.Join(errs...)
}

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(trimmed) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
