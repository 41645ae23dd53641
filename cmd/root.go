package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ab",
		Short:         "Argent Bank CLI (ab): sign in and view your accounts",
		Long:          "ab talks to the Argent Bank API: sign up, sign in with an optional remembered session, view your profile and accounts from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignInCmd(app),
		newSignOutCmd(app),
		newSignUpCmd(app),
		newProfileCmd(app),
		newAccountsCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
