package entities

import "time"

// User is a registered account, stored by the authentication provider.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthSession is the observable proof of an authenticated user. The
// navigation core only ever checks it for presence; everything else is
// informational.
type AuthSession struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}
