package domain

import "time"

// Origin tells which command started the current profile request.
type Origin string

const (
	OriginNone   Origin = ""
	OriginFetch  Origin = "fetch"
	OriginCreate Origin = "create"
)

type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

// Profile is the user profile slice. Identity is either nil or holds every
// field returned by the backend at once.
type Profile struct {
	Status   Status
	Origin   Origin
	Identity *Identity
	Message  string
	Error    string
	Request  uint64
}

func NewProfile() Profile {
	return Profile{Status: StatusVoid}
}

// ID returns the loaded identity id or "".
func (p Profile) ID() string {
	if p.Identity == nil {
		return ""
	}
	return p.Identity.ID
}

func (p Profile) CheckInvariants() error {
	if !p.Status.Valid() {
		return &InvariantError{Slice: "profile", Detail: "unknown status " + string(p.Status)}
	}
	if p.Error != "" && p.Status != StatusRejected {
		return &InvariantError{Slice: "profile", Detail: "error set while " + string(p.Status)}
	}
	if p.Identity != nil && p.Identity.ID == "" {
		return &InvariantError{Slice: "profile", Detail: "identity without id"}
	}
	return nil
}
