package page

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

// StatusDocument summarizes the stored session for `ab status`.
type StatusDocument struct {
	Session   application.SessionView
	Profile   *application.ProfileView
	Token     *application.TokenInfo
	Connected bool
	Now       time.Time
}

func (d StatusDocument) render(s styles) string {
	lines := []string{
		s.title.Render("Argent Bank session"),
		keyValue(s, "status", string(d.Session.Status)),
		keyValue(s, "remember me", yesNo(d.Session.RememberMe)),
		keyValue(s, "token", tokenLabel(d.Session, s)),
	}

	if d.Token != nil && !d.Token.ExpiresAt.IsZero() {
		expiry := formatExpiry(d.Token.ExpiresAt, d.Now)
		if d.Token.Expired(d.Now) {
			expiry = s.warning.Render(expiry)
		}
		lines = append(lines, keyValue(s, "expires", expiry))
	}
	if d.Session.Error != "" {
		lines = append(lines, keyValue(s, "error", s.warning.Render(d.Session.Error)))
	}

	if d.Profile != nil && d.Profile.ID != "" {
		lines = append(lines, keyValue(s, "user", fmt.Sprintf("%s <%s>", d.Profile.FullName(), d.Profile.Email)))
	}
	if d.Connected {
		lines = append(lines, s.good.Render("connected"))
	} else {
		lines = append(lines, s.empty.Render("not connected"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func tokenLabel(view application.SessionView, s styles) string {
	switch {
	case view.Token == "":
		return s.empty.Render("none")
	case view.HasValidToken:
		return "present"
	default:
		return s.warning.Render("malformed")
	}
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return expiresAt.Format(time.RFC3339)
	}
	if !now.Before(expiresAt) {
		return "expired " + expiresAt.Format("15:04 on 02 Jan")
	}

	remaining := expiresAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("in %d %s (%s)", hours, suffix, expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}
	return fmt.Sprintf("in %d %s (%s)", days, suffix, expiresAt.Format("15:04 on 02 Jan"))
}
