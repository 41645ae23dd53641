package application

import (
	"time"

	"github.com/bnema/argent-bank-cli/internal/domain"
)

// Command is any event the Store can dispatch.
type Command interface {
	commandName() string
}

// SessionCommand is an event handled by ReduceSession.
type SessionCommand interface {
	Command
	sessionCommand()
}

type FetchToken struct {
	Request uint64
}

type ResolveToken struct {
	Request uint64
	Token   string
	At      time.Time
}

type RejectToken struct {
	Request uint64
	Message string
}

type PersistToken struct {
	Token string
}

type Deconnect struct {
	Token string
}

type SetRememberMe struct {
	Value bool
}

func (FetchToken) sessionCommand()    {}
func (ResolveToken) sessionCommand()  {}
func (RejectToken) sessionCommand()   {}
func (PersistToken) sessionCommand()  {}
func (Deconnect) sessionCommand()     {}
func (SetRememberMe) sessionCommand() {}

func (FetchToken) commandName() string    { return "session/fetchToken" }
func (ResolveToken) commandName() string  { return "session/resolveToken" }
func (RejectToken) commandName() string   { return "session/rejectToken" }
func (PersistToken) commandName() string  { return "session/persist" }
func (Deconnect) commandName() string     { return "session/deconnect" }
func (SetRememberMe) commandName() string { return "session/setRememberMe" }

// StorageEffect is a token storage operation requested by a transition.
type StorageEffect interface {
	storageEffect()
}

type WriteToken struct {
	Token      string
	Persistent bool
}

type ClearToken struct {
	Persistent bool
}

func (WriteToken) storageEffect() {}
func (ClearToken) storageEffect() {}

// ReduceSession applies cmd to state. Commands that do not match a
// transition leave the state untouched and produce no effects.
func ReduceSession(state domain.Session, cmd SessionCommand) (domain.Session, []StorageEffect) {
	switch c := cmd.(type) {
	case FetchToken:
		if c.Request < state.Request {
			return state, nil
		}
		switch state.Status {
		case domain.StatusVoid:
			state.Status = domain.StatusPending
		case domain.StatusRejected:
			state.Status = domain.StatusPending
			state.Error = ""
		case domain.StatusResolved:
			state.Status = domain.StatusUpdating
			state.Token = ""
		case domain.StatusPending, domain.StatusUpdating:
			// a newer submission supersedes the outstanding one
		default:
			return state, nil
		}
		state.Request = c.Request
		return state, nil

	case ResolveToken:
		if !state.Status.InFlight() || c.Request != state.Request {
			return state, nil
		}
		state.Status = domain.StatusResolved
		state.Token = c.Token
		state.ResolvedAt = c.At
		if !state.RememberMe {
			return state, []StorageEffect{ClearToken{Persistent: true}}
		}
		return state, nil

	case RejectToken:
		if !state.Status.InFlight() || c.Request != state.Request {
			return state, nil
		}
		state.Status = domain.StatusRejected
		state.Token = ""
		state.Error = c.Message
		state.ResolvedAt = time.Time{}
		return state, nil

	case PersistToken:
		if state.Status != domain.StatusResolved || state.Token == "" || state.Token != c.Token {
			return state, nil
		}
		return state, []StorageEffect{WriteToken{Token: c.Token, Persistent: state.RememberMe}}

	case Deconnect:
		if state.Status != domain.StatusResolved || state.Token != c.Token {
			return state, nil
		}
		state.Status = domain.StatusVoid
		state.Token = ""
		state.ResolvedAt = time.Time{}
		return state, []StorageEffect{ClearToken{Persistent: !state.RememberMe}}

	case SetRememberMe:
		state.RememberMe = c.Value
		return state, nil
	}

	return state, nil
}

// isStaleSession reports whether cmd is a response to a superseded request.
func isStaleSession(state domain.Session, cmd SessionCommand) bool {
	switch c := cmd.(type) {
	case ResolveToken:
		return c.Request != state.Request
	case RejectToken:
		return c.Request != state.Request
	}
	return false
}
