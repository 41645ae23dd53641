package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type ProfileDocument struct {
	Page application.ProfilePage
}

func (d ProfileDocument) render(s styles) string {
	lines := []string{s.title.Render(d.Page.Greeting())}
	if d.Page.Profile.Message != "" {
		lines = append(lines, s.good.Render(d.Page.Profile.Message))
	}

	if len(d.Page.Accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range d.Page.Accounts {
		lines = append(lines, s.section.Render(renderAccount(account, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// AccountsDocument lists the catalogue without a greeting.
type AccountsDocument struct {
	Accounts []domain.Account
}

func (d AccountsDocument) render(s styles) string {
	lines := []string{
		s.title.Render("Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(d.Accounts))),
	}
	for _, account := range d.Accounts {
		lines = append(lines, s.section.Render(renderAccount(account, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.Account, s styles) string {
	parts := []string{
		s.account.Render(account.Title),
		s.amount.Render(formatAmount(account.Amount)),
	}
	if account.Description != "" {
		parts = append(parts, s.detail.Render(account.Description))
	}
	parts = append(parts, s.header.Render("id: "+string(account.ID)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// formatAmount prints dollars with thousands separators, e.g. $10,928.42.
func formatAmount(amount domain.Cents) string {
	sign := ""
	cents := int64(amount)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents%100)
}
