package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidThemeMode   = errors.New("invalid theme mode")
)
