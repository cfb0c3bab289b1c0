package services

import (
	"github.com/themizzi/saucesuite/internal/models"
)

// AuthService checks login credentials
type AuthService interface {
	Authenticate(username, password string) error
}

// UserDirectory authenticates against a fixed set of accounts sharing one password
type UserDirectory struct {
	users    map[string]models.User
	password string
}

// NewUserDirectory creates a directory over users
func NewUserDirectory(users []models.User, password string) *UserDirectory {
	d := &UserDirectory{users: make(map[string]models.User, len(users)), password: password}
	for _, u := range users {
		d.users[u.Username] = u
	}
	return d
}

// Authenticate returns nil or one of the models login errors. Missing fields
// are reported before the account is looked up, and a locked account is only
// revealed to a caller that knows the password.
func (d *UserDirectory) Authenticate(username, password string) error {
	if username == "" {
		return models.ErrUsernameRequired
	}
	if password == "" {
		return models.ErrPasswordRequired
	}
	u, ok := d.users[username]
	if !ok || password != d.password {
		return models.ErrBadCredentials
	}
	if u.LockedOut {
		return models.ErrLockedOut
	}
	return nil
}
