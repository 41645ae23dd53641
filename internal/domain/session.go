package domain

import "time"

// TokenKey is the single key written to every token storage tier.
const TokenKey = "token"

// Session is the authentication slice. Token is set only while Status is
// resolved and Error only while Status is rejected.
type Session struct {
	Status     Status
	Token      string
	RememberMe bool
	Error      string
	// Request is the number of the latest login request. Responses carrying
	// another number are stale.
	Request    uint64
	ResolvedAt time.Time
}

func NewSession() Session {
	return Session{Status: StatusVoid}
}

// CheckInvariants returns an error describing the first broken invariant.
func (s Session) CheckInvariants() error {
	if !s.Status.Valid() {
		return &InvariantError{Slice: "session", Detail: "unknown status " + string(s.Status)}
	}
	if s.Token != "" && s.Status != StatusResolved {
		return &InvariantError{Slice: "session", Detail: "token set while " + string(s.Status)}
	}
	if s.Error != "" && s.Status != StatusRejected {
		return &InvariantError{Slice: "session", Detail: "error set while " + string(s.Status)}
	}
	return nil
}
