package output

import (
	"context"

	"cropguru/internal/domain/entities"
)

// AuthProvider owns the session lifecycle. The navigation core only ever
// observes it: a nil session means unauthenticated.
type AuthProvider interface {
	// CurrentSession returns the active session, or nil if there is none.
	CurrentSession(ctx context.Context) (*entities.AuthSession, error)
	// OnSessionChange registers a callback invoked on every login, logout or
	// expiry. Callbacks are invoked one at a time, in registration order.
	OnSessionChange(fn func(*entities.AuthSession))
	SignUp(ctx context.Context, email, password, fullName string) (*entities.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*entities.AuthSession, error)
	SignOut(ctx context.Context) error
}

// UserRepository persists registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
