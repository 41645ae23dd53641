package application

import (
	"sync"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

// Guard sends the user to the sign-in entry point once nothing is loading
// and the user is not connected. It acts at most once per distinct
// (loading, connected) pair.
type Guard struct {
	nav ports.Navigator

	mu        sync.Mutex
	evaluated bool
	loading   bool
	connected bool
}

func NewGuard(nav ports.Navigator) *Guard {
	return &Guard{nav: nav}
}

// Evaluate reports whether it navigated.
func (g *Guard) Evaluate(loading, connected bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.evaluated && g.loading == loading && g.connected == connected {
		return false
	}
	g.evaluated = true
	g.loading = loading
	g.connected = connected

	if loading || connected {
		return false
	}
	g.nav.Navigate(ports.RouteSignIn)
	return true
}

// Watch evaluates the guard now and after every store change. statusOf picks
// the slice whose loading state protects the view.
func (g *Guard) Watch(store *Store, statusOf func(State) domain.Status) func() {
	check := func(state State) {
		g.Evaluate(IsLoading(statusOf(state)), IsConnected(state.Session, state.Profile))
	}

	stop := store.Subscribe(check)
	check(store.State())
	return stop
}

func SessionStatus(state State) domain.Status {
	return state.Session.Status
}

func ProfileStatus(state State) domain.Status {
	return state.Profile.Status
}
