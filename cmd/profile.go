package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/argent-bank-cli/internal/adapters/render/page"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile and accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := connect(cmd, app)
			if err != nil {
				return err
			}

			profilePage, err := app.service.ProfilePage(cmd.Context(), state)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profilePage)
			}

			rendered, err := app.render(page.ProfileDocument{Page: profilePage})
			if err != nil {
				return fmt.Errorf("render profile: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
