package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignOutCmd(app *app) *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Sign out of the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store := app.sessionStore(ctx)

			state := store.State()
			if state.Session.Token == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return err
			}

			if forget {
				store.SetRememberMe(ctx, false)
			}
			// The profile slice only lives for one process; there is no
			// loaded identity to forget here.
			store.Deconnect(ctx, state.Session.Token)

			if store.State().Session.RememberMe {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out of this session; the remembered token was kept (use --forget to remove it)")
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "Also remove the remembered token")

	return cmd
}
