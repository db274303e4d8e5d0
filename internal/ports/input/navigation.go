package input

import (
	"context"

	"cropguru/internal/domain/entities"
)

// NavigationUseCase gates page transitions behind authentication and
// preserves the user's intent across a login detour.
type NavigationUseCase interface {
	// RequestNavigation applies a transition to target. Unauthenticated
	// requests for a protected page divert to the login page and remember
	// the target.
	RequestNavigation(target entities.Page)
	// OnAuthStatusChanged reacts to an observed session transition. It is
	// idempotent: repeating the same status is a no-op.
	OnAuthStatusChanged(authenticated bool)
	// Logout asks the auth provider to end the session; page changes follow
	// from the provider's notification, not from this call.
	Logout(ctx context.Context) error
	State() entities.NavigationState
	Authenticated() bool
}
