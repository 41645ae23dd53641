package cmd

import (
	"fmt"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/ports"
	"github.com/spf13/cobra"
)

// connect loads the profile behind the stored token and returns the
// resulting state. A redirect from the guard becomes ErrSignInRequired.
func connect(cmd *cobra.Command, app *app) (application.State, error) {
	ctx := cmd.Context()
	store := app.sessionStore(ctx)

	var redirected bool
	guard := application.NewGuard(ports.NavigatorFunc(func(route ports.Route) {
		app.log.Debug("guard redirect", "route", route)
		redirected = true
	}))

	state := store.State()
	if !application.HasValidToken(state.Session) {
		guard.Evaluate(false, false)
		return state, signInRequired()
	}

	stop := guard.Watch(store, application.ProfileStatus)
	defer stop()

	task := store.FetchOrUpdateProfile(ctx, state.Session.Token)
	if err := waitWithSpinner(ctx, cmd.ErrOrStderr(), "Loading profile...", task); err != nil {
		return store.State(), err
	}

	state = store.State()
	if redirected {
		app.log.Debug("profile unavailable", "error", state.Profile.Error)
		return state, signInRequired()
	}
	return state, nil
}

func signInRequired() error {
	return fmt.Errorf("%w: run `ab signin --email <email> --password <password>`", domain.ErrSignInRequired)
}
