package domain

// Status tracks the lifecycle of the last request issued by a slice.
type Status string

const (
	StatusVoid     Status = "void"
	StatusPending  Status = "pending"
	StatusUpdating Status = "updating"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusVoid, StatusPending, StatusUpdating, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}

// InFlight reports whether a request is outstanding.
func (s Status) InFlight() bool {
	return s == StatusPending || s == StatusUpdating
}

// Loading is true while no final answer is available yet, including before
// the first request.
func (s Status) Loading() bool {
	return s == StatusVoid || s.InFlight()
}
