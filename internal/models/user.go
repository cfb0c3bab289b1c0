package models

import "fmt"

// Login banner messages
const (
	MsgUsernameRequired = "Epic sadface: Username is required"
	MsgPasswordRequired = "Epic sadface: Password is required"
	MsgLockedOut        = "Epic sadface: Sorry, this user has been locked out."
	MsgBadCredentials   = "Epic sadface: Username and password do not match any user in this service"
)

// LoginError is a rejected login, rendered verbatim in the login error banner
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

// Login errors, checked in this order
var (
	ErrUsernameRequired = &LoginError{Message: MsgUsernameRequired}
	ErrPasswordRequired = &LoginError{Message: MsgPasswordRequired}
	ErrLockedOut        = &LoginError{Message: MsgLockedOut}
	ErrBadCredentials   = &LoginError{Message: MsgBadCredentials}
)

// SharedPassword is accepted for every account
const SharedPassword = "secret_sauce"

// User is a storefront account
type User struct {
	Username  string
	LockedOut bool
}

// Accounts lists the storefront's users
func Accounts() []User {
	return []User{
		{Username: "standard_user"},
		{Username: "locked_out_user", LockedOut: true},
		{Username: "problem_user"},
		{Username: "performance_glitch_user"},
		{Username: "error_user"},
		{Username: "visual_user"},
	}
}

// AccessDenied is shown on the login page after a signed-out visit to path,
// given without its leading slash
func AccessDenied(path string) *LoginError {
	return &LoginError{Message: fmt.Sprintf("Epic sadface: You can only access '/%s' when you are logged in.", path)}
}
