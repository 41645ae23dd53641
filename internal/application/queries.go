package application

import "github.com/bnema/argent-bank-cli/internal/domain"

// ProfilePage is what the profile view shows once the user is connected.
type ProfilePage struct {
	Profile  ProfileView      `json:"profile"`
	Accounts []domain.Account `json:"accounts"`
}

func (p ProfilePage) Greeting() string {
	return "Welcome back " + p.Profile.FullName() + "!"
}
