package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

// State is a snapshot of both slices.
type State struct {
	Session domain.Session
	Profile domain.Profile
}

type StoreDeps struct {
	API     ports.BankAPI
	Storage ports.TokenStorage
	Clock   ports.Clock
	Logger  *slog.Logger
}

// Store owns the session and profile slices. Dispatches are serialized; a
// transition and its storage effects complete before the next one starts.
type Store struct {
	api     ports.BankAPI
	storage ports.TokenStorage
	clock   ports.Clock
	log     *slog.Logger

	mu          sync.Mutex
	state       State
	seq         uint64
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore builds the store and hydrates the session from storage.
func NewStore(ctx context.Context, deps StoreDeps) *Store {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Noop()
	}

	s := &Store{
		api:         deps.API,
		storage:     deps.Storage,
		clock:       deps.Clock,
		log:         deps.Logger,
		subscribers: map[int]func(State){},
	}
	s.state = State{Session: s.hydrate(ctx), Profile: domain.NewProfile()}

	return s
}

func (s *Store) hydrate(ctx context.Context) domain.Session {
	session := domain.NewSession()
	if s.storage == nil {
		return session
	}

	session.RememberMe = s.storage.Remembered(ctx)
	if token, ok := s.storage.Read(ctx); ok {
		session.Status = domain.StatusResolved
		session.Token = token
	}
	s.log.Debug("session hydrated", "status", session.Status, "rememberMe", session.RememberMe)

	return session
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch. fn runs while the store
// is locked and must not dispatch.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Reset restores the void state without touching storage.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Session: domain.NewSession(), Profile: domain.NewProfile()}
}

func (s *Store) Dispatch(ctx context.Context, cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(ctx, cmd)
}

// begin numbers a request and dispatches its opening command in one critical
// section, so slices always see request numbers in increasing order.
func (s *Store) begin(ctx context.Context, open func(request uint64) Command) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.dispatchLocked(ctx, open(s.seq))
	return s.seq
}

func (s *Store) dispatchLocked(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case SessionCommand:
		if isStaleSession(s.state.Session, c) {
			s.log.Debug("drop stale response", "command", c.commandName(), "current", s.state.Session.Request)
		}
		next, effects := ReduceSession(s.state.Session, c)
		s.checkInvariants(c, next.CheckInvariants())
		s.state.Session = next
		s.apply(ctx, effects)
	case ProfileCommand:
		if isStaleProfile(s.state.Profile, c) {
			s.log.Debug("drop stale response", "command", c.commandName(), "current", s.state.Profile.Request)
		}
		next := ReduceProfile(s.state.Profile, c)
		s.checkInvariants(c, next.CheckInvariants())
		s.state.Profile = next
	default:
		return
	}

	snapshot := s.state
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func (s *Store) checkInvariants(cmd Command, err error) {
	if err != nil {
		s.log.Error("state invariant violated", "command", cmd.commandName(), "error", err)
	}
}

func (s *Store) apply(ctx context.Context, effects []StorageEffect) {
	if s.storage == nil {
		return
	}
	for _, effect := range effects {
		switch e := effect.(type) {
		case WriteToken:
			s.storage.Write(ctx, e.Token, e.Persistent)
		case ClearToken:
			s.storage.Clear(ctx, e.Persistent)
		}
	}
}

func (s *Store) start(ctx context.Context, request uint64, run func(ctx context.Context)) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	task := &Task{request: request, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer cancel()
		run(taskCtx)
	}()

	return task
}

// FetchToken signs in and stores the token according to rememberMe.
func (s *Store) FetchToken(ctx context.Context, creds domain.Credentials) *Task {
	request := s.begin(ctx, func(request uint64) Command {
		return FetchToken{Request: request}
	})

	return s.start(ctx, request, func(taskCtx context.Context) {
		token, err := s.api.Login(taskCtx, creds)
		outcomeCtx := context.WithoutCancel(taskCtx)
		if err != nil {
			s.log.Debug("login failed", "request", request, "error", err)
			s.Dispatch(outcomeCtx, RejectToken{Request: request, Message: err.Error()})
			return
		}
		s.Dispatch(outcomeCtx, ResolveToken{Request: request, Token: token, At: s.clock.Now()})
		s.Dispatch(outcomeCtx, PersistToken{Token: token})
	})
}

// FetchOrUpdateProfile loads the profile using token as bearer credential.
func (s *Store) FetchOrUpdateProfile(ctx context.Context, token string) *Task {
	request := s.begin(ctx, func(request uint64) Command {
		return FetchProfile{Request: request}
	})

	return s.start(ctx, request, func(taskCtx context.Context) {
		identity, err := s.api.Profile(taskCtx, token)
		outcomeCtx := context.WithoutCancel(taskCtx)
		if err != nil {
			s.log.Debug("profile fetch failed", "request", request, "error", err)
			s.Dispatch(outcomeCtx, RejectProfile{Request: request, Message: err.Error()})
			return
		}
		s.Dispatch(outcomeCtx, ResolveProfile{Request: request, Identity: identity})
	})
}

// CreateProfile registers a new user.
func (s *Store) CreateProfile(ctx context.Context, reg domain.Registration) *Task {
	request := s.begin(ctx, func(request uint64) Command {
		return CreateProfile{Request: request}
	})

	return s.start(ctx, request, func(taskCtx context.Context) {
		identity, message, err := s.api.Signup(taskCtx, reg)
		outcomeCtx := context.WithoutCancel(taskCtx)
		if err != nil {
			s.log.Debug("signup failed", "request", request, "error", err)
			rejection := err.Error()
			if backendMessage, ok := domain.BackendMessage(err); ok {
				s.Dispatch(outcomeCtx, Failed{Request: request, Message: backendMessage})
				rejection = backendMessage
			}
			s.Dispatch(outcomeCtx, RejectProfile{Request: request, Message: rejection})
			return
		}
		s.Dispatch(outcomeCtx, ResolveProfile{Request: request, Identity: identity})
		s.Dispatch(outcomeCtx, Created{Request: request, Message: message})
	})
}

func (s *Store) Deconnect(ctx context.Context, token string) {
	s.Dispatch(ctx, Deconnect{Token: token})
}

func (s *Store) SetRememberMe(ctx context.Context, value bool) {
	s.Dispatch(ctx, SetRememberMe{Value: value})
}

func (s *Store) Forget(ctx context.Context, id string) {
	s.Dispatch(ctx, Forget{ID: id})
}

func (s *Store) CleanMessage(ctx context.Context) {
	s.Dispatch(ctx, CleanMessage{})
}
