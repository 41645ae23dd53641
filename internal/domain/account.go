package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type AccountID string

// Cents is a money amount in hundredths of a dollar.
type Cents int64

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ParseCents reads a dollar amount such as "1500", "1,500.5" or "-$3.20".
func ParseCents(s string) (Cents, error) {
	raw := strings.TrimSpace(s)
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	if !amountPattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole, frac, _ := strings.Cut(raw, ".")
	frac = (frac + "00")[:2]

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)

	total := Cents(dollars*100 + cents)
	if negative {
		total = -total
	}
	return total, nil
}

// Account is a bank account shown on the profile page.
type Account struct {
	ID          AccountID `json:"id"`
	Title       string    `json:"title"`
	Amount      Cents     `json:"amountCents"`
	Description string    `json:"description"`
}

// DefaultAccounts is the demo catalogue used when none is configured.
func DefaultAccounts() []Account {
	return []Account{
		{ID: "x8349-checking", Title: "Argent Bank Checking (x8349)", Amount: 208279, Description: "Available Balance"},
		{ID: "x6712-savings", Title: "Argent Bank Savings (x6712)", Amount: 1092842, Description: "Available Balance"},
		{ID: "x8349-credit", Title: "Argent Bank Credit Card (x8349)", Amount: 18430, Description: "Current Balance"},
	}
}
