package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignUpCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an Argent Bank account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := reg.Validate(); err != nil {
				return err
			}
			return runSignUp(cmd, app, reg)
		},
	}

	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")
	for _, name := range []string{"first-name", "last-name", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runSignUp(cmd *cobra.Command, app *app, reg domain.Registration) error {
	ctx := cmd.Context()
	store := app.sessionStore(ctx)

	task := store.CreateProfile(ctx, reg)
	if err := waitWithSpinner(ctx, cmd.ErrOrStderr(), "Creating account...", task); err != nil {
		return err
	}

	profile := store.State().Profile
	if fieldErr, ok := application.SignupConflict(profile); ok {
		return fmt.Errorf("%s: %s", fieldErr.Field, fieldErr.Message)
	}
	if profile.Status == domain.StatusRejected {
		return fmt.Errorf("sign up failed: %s", profile.Error)
	}
	if profile.Status != domain.StatusResolved {
		return errors.New("sign up did not complete")
	}

	message := profile.Message
	if message == "" {
		message = "Account created"
	}
	store.CleanMessage(ctx)

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\nSign in with: ab signin --email %s --password <password>\n", message, reg.Email)
	return err
}
