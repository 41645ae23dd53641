package application

import (
	"regexp"
	"time"

	"github.com/bnema/argent-bank-cli/internal/domain"
)

var tokenShape = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// HasValidToken checks the token shape only; its contents are never
// interpreted.
func HasValidToken(session domain.Session) bool {
	return session.Token != "" && tokenShape.MatchString(session.Token)
}

// IsConnected requires both a token and a loaded profile.
func IsConnected(session domain.Session, profile domain.Profile) bool {
	return session.Token != "" && profile.ID() != ""
}

func IsLoading(status domain.Status) bool {
	return status.Loading()
}

type SessionView struct {
	Status        domain.Status `json:"status"`
	Token         string        `json:"token,omitempty"`
	HasValidToken bool          `json:"hasValidToken"`
	RememberMe    bool          `json:"rememberMe"`
	Error         string        `json:"error,omitempty"`
}

func SessionViewOf(session domain.Session) SessionView {
	return SessionView{
		Status:        session.Status,
		Token:         session.Token,
		HasValidToken: HasValidToken(session),
		RememberMe:    session.RememberMe,
		Error:         session.Error,
	}
}

type ProfileView struct {
	Status    domain.Status `json:"status"`
	ID        string        `json:"id,omitempty"`
	Email     string        `json:"email,omitempty"`
	FirstName string        `json:"firstName,omitempty"`
	LastName  string        `json:"lastName,omitempty"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
	Message   string        `json:"message,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// FullName joins the names that are present.
func (v ProfileView) FullName() string {
	return domain.Identity{FirstName: v.FirstName, LastName: v.LastName}.FullName()
}

func ProfileViewOf(profile domain.Profile) ProfileView {
	view := ProfileView{
		Status:  profile.Status,
		Message: profile.Message,
		Error:   profile.Error,
	}
	if identity := profile.Identity; identity != nil {
		view.ID = identity.ID
		view.Email = identity.Email
		view.FirstName = identity.FirstName
		view.LastName = identity.LastName
		view.CreatedAt = timePtr(identity.CreatedAt)
		view.UpdatedAt = timePtr(identity.UpdatedAt)
	}
	return view
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// FieldError ties a rejection to the form field it should be shown on.
type FieldError struct {
	Field   string
	Message string
}

// CredentialError maps a rejected sign-in to the password field.
func CredentialError(session domain.Session) (FieldError, bool) {
	if session.Status != domain.StatusRejected {
		return FieldError{}, false
	}
	return FieldError{Field: "password", Message: session.Error}, true
}

// SignupConflict reports a signup refused by the backend, such as a
// duplicate email, as opposed to a transport failure.
func SignupConflict(profile domain.Profile) (FieldError, bool) {
	if profile.Origin != domain.OriginCreate || profile.Status != domain.StatusRejected || profile.Message == "" {
		return FieldError{}, false
	}
	return FieldError{Field: "email", Message: profile.Message}, true
}
