package cmd

import (
	"fmt"

	"github.com/bnema/argent-bank-cli/internal/adapters/render/page"
	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the account catalogue",
	}

	cmd.AddCommand(
		newAccountsListCmd(app),
		newAccountsAddCmd(app),
	)

	return cmd
}

func newAccountsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := connect(cmd, app); err != nil {
				return err
			}

			accounts, err := app.service.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.render(page.AccountsDocument{Accounts: accounts})
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newAccountsAddCmd(app *app) *cobra.Command {
	var (
		id          string
		title       string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update an account in the local catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cents, err := domain.ParseCents(amount)
			if err != nil {
				return err
			}

			account, err := app.service.AddAccount(cmd.Context(), application.AddAccountCommand{
				ID:          domain.AccountID(id),
				Title:       title,
				Amount:      cents,
				Description: description,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved account %s\n", account.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Account ID (derived from the title when empty)")
	cmd.Flags().StringVar(&title, "title", "", "Account title, e.g. \"Argent Bank Savings (x6712)\"")
	cmd.Flags().StringVar(&amount, "amount", "0", "Balance in dollars, e.g. 1,500.50")
	cmd.Flags().StringVar(&description, "description", "Available Balance", "Balance description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
