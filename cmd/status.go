package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/argent-bank-cli/internal/adapters/render/page"
	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Session   application.SessionView  `json:"session"`
	Profile   *application.ProfileView `json:"profile,omitempty"`
	Token     *tokenOutput             `json:"tokenClaims,omitempty"`
	Connected bool                     `json:"connected"`
}

type tokenOutput struct {
	Subject   string     `json:"subject,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Expired   bool       `json:"expired"`
}

func newStatusCmd(app *app) *cobra.Command {
	var (
		asJSON      bool
		withProfile bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.sessionStore(cmd.Context()).State()
			if withProfile {
				connected, err := connect(cmd, app)
				if err != nil && !errors.Is(err, domain.ErrSignInRequired) {
					return err
				}
				state = connected
			}

			out := statusOutput{
				Session:   application.SessionViewOf(state.Session),
				Connected: application.IsConnected(state.Session, state.Profile),
			}
			if state.Profile.Identity != nil {
				view := application.ProfileViewOf(state.Profile)
				out.Profile = &view
			}

			var info *application.TokenInfo
			if application.HasValidToken(state.Session) {
				if inspected, err := application.InspectToken(state.Session.Token); err == nil {
					info = &inspected
					out.Token = newTokenOutput(inspected, app.now())
				} else {
					app.log.Debug("token is not a readable jwt", "error", err)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.render(page.StatusDocument{
				Session:   out.Session,
				Profile:   out.Profile,
				Token:     info,
				Connected: out.Connected,
				Now:       app.now(),
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&withProfile, "profile", false, "Also load the profile to check the connection")

	return cmd
}

func newTokenOutput(info application.TokenInfo, now time.Time) *tokenOutput {
	out := &tokenOutput{Subject: info.Subject, UserID: info.UserID, Expired: info.Expired(now)}
	if !info.IssuedAt.IsZero() {
		issued := info.IssuedAt
		out.IssuedAt = &issued
	}
	if !info.ExpiresAt.IsZero() {
		expires := info.ExpiresAt
		out.ExpiresAt = &expires
	}
	return out
}
