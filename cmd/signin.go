package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignInCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds := domain.Credentials{Email: email, Password: password}
			if err := creds.Validate(); err != nil {
				return err
			}
			return runSignIn(cmd, app, creds, remember)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "Keep the token after this session ends")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runSignIn(cmd *cobra.Command, app *app, creds domain.Credentials, remember bool) error {
	ctx := cmd.Context()
	store := app.sessionStore(ctx)

	store.SetRememberMe(ctx, remember)
	task := store.FetchToken(ctx, creds)
	if err := waitWithSpinner(ctx, cmd.ErrOrStderr(), "Signing in...", task); err != nil {
		return err
	}

	session := store.State().Session
	if fieldErr, ok := application.CredentialError(session); ok {
		return fmt.Errorf("%s: %s", fieldErr.Field, fieldErr.Message)
	}
	if session.Status != domain.StatusResolved {
		return errors.New("sign in did not complete")
	}

	state, err := connect(cmd, app)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", application.ProfileViewOf(state.Profile).FullName())
	return err
}
