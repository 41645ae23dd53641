package application

import "github.com/bnema/argent-bank-cli/internal/domain"

// ProfileCommand is an event handled by ReduceProfile.
type ProfileCommand interface {
	Command
	profileCommand()
}

type FetchProfile struct {
	Request uint64
}

type CreateProfile struct {
	Request uint64
}

type ResolveProfile struct {
	Request  uint64
	Identity domain.Identity
}

type RejectProfile struct {
	Request uint64
	Message string
}

// Created carries the backend note attached to a successful signup.
type Created struct {
	Request uint64
	Message string
}

// Failed carries the backend explanation of a refused signup.
type Failed struct {
	Request uint64
	Message string
}

type Forget struct {
	ID string
}

type CleanMessage struct{}

func (FetchProfile) profileCommand()   {}
func (CreateProfile) profileCommand()  {}
func (ResolveProfile) profileCommand() {}
func (RejectProfile) profileCommand()  {}
func (Created) profileCommand()        {}
func (Failed) profileCommand()         {}
func (Forget) profileCommand()         {}
func (CleanMessage) profileCommand()   {}

func (FetchProfile) commandName() string   { return "profile/fetching" }
func (CreateProfile) commandName() string  { return "profile/creating" }
func (ResolveProfile) commandName() string { return "profile/resolved" }
func (RejectProfile) commandName() string  { return "profile/rejected" }
func (Created) commandName() string        { return "profile/created" }
func (Failed) commandName() string         { return "profile/failed" }
func (Forget) commandName() string         { return "profile/forget" }
func (CleanMessage) commandName() string   { return "profile/cleanMessage" }

// ReduceProfile applies cmd to state. The profile slice has no storage
// effects.
func ReduceProfile(state domain.Profile, cmd ProfileCommand) domain.Profile {
	switch c := cmd.(type) {
	case FetchProfile:
		if c.Request < state.Request {
			return state
		}
		switch state.Status {
		case domain.StatusVoid:
			state.Status = domain.StatusPending
		case domain.StatusRejected:
			state.Status = domain.StatusPending
			state.Error = ""
		case domain.StatusResolved:
			state.Status = domain.StatusUpdating
		case domain.StatusPending, domain.StatusUpdating:
		default:
			return state
		}
		state.Origin = domain.OriginFetch
		state.Request = c.Request
		return state

	case CreateProfile:
		if c.Request < state.Request {
			return state
		}
		switch state.Status {
		case domain.StatusVoid, domain.StatusResolved:
			state.Identity = nil
			state.Message = ""
		case domain.StatusRejected:
			state.Error = ""
			state.Message = ""
		case domain.StatusPending, domain.StatusUpdating:
		default:
			return state
		}
		state.Status = domain.StatusPending
		state.Origin = domain.OriginCreate
		state.Request = c.Request
		return state

	case ResolveProfile:
		if !state.Status.InFlight() || c.Request != state.Request {
			return state
		}
		identity := c.Identity
		state.Identity = &identity
		state.Status = domain.StatusResolved
		return state

	case RejectProfile:
		if !state.Status.InFlight() || c.Request != state.Request {
			return state
		}
		state.Status = domain.StatusRejected
		state.Error = c.Message
		return state

	case Created:
		if state.Status != domain.StatusResolved || c.Request != state.Request {
			return state
		}
		state.Message = c.Message
		return state

	case Failed:
		if state.Status != domain.StatusPending || c.Request != state.Request {
			return state
		}
		state.Message = c.Message
		return state

	case Forget:
		if state.Status != domain.StatusResolved || state.Identity == nil || state.Identity.ID != c.ID {
			return state
		}
		state.Status = domain.StatusVoid
		state.Origin = domain.OriginNone
		state.Identity = nil
		return state

	case CleanMessage:
		state.Message = ""
		return state
	}

	return state
}

func isStaleProfile(state domain.Profile, cmd ProfileCommand) bool {
	switch c := cmd.(type) {
	case ResolveProfile:
		return c.Request != state.Request
	case RejectProfile:
		return c.Request != state.Request
	case Created:
		return c.Request != state.Request
	case Failed:
		return c.Request != state.Request
	}
	return false
}
