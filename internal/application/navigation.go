package application

import (
	"context"
	"log"
	"sync"

	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

// NavigationService mediates page transitions and keeps the UI off
// protected pages while unauthenticated. It is constructed once at startup
// and shared by every surface; the mutex serializes observed auth
// notifications with navigation requests.
type NavigationService struct {
	mu    sync.Mutex
	auth  output.AuthProvider
	store output.NavigationStateStore

	state  entities.NavigationState
	authed bool
}

// NewNavigationService restores persisted state, probes the current session
// once and subscribes to session changes.
func NewNavigationService(ctx context.Context, auth output.AuthProvider, store output.NavigationStateStore) *NavigationService {
	s := &NavigationService{auth: auth, store: store}
	s.restore()

	session, err := auth.CurrentSession(ctx)
	if err != nil {
		log.Printf("navigation: session probe failed, assuming unauthenticated: %v", err)
		session = nil
	}

	s.mu.Lock()
	if session != nil {
		s.applyAuthStatusLocked(true)
	} else if s.state.CurrentPage.Protected() {
		// Restored page is unreachable without a session.
		s.state.CurrentPage = entities.PageHome
		s.persistLocked()
	}
	s.mu.Unlock()

	auth.OnSessionChange(func(session *entities.AuthSession) {
		s.OnAuthStatusChanged(session != nil)
	})
	return s
}

// restore loads the persisted navigation tuple, discarding anything that
// does not validate against the closed page set.
func (s *NavigationService) restore() {
	current, pending := s.store.Load()

	page, ok := entities.ParsePage(current)
	if !ok {
		page = entities.PageHome
	}
	s.state.CurrentPage = page

	if target, ok := entities.ParsePage(pending); ok && target.Protected() {
		s.state.PendingTarget = target
	}
}

// RequestNavigation applies a page transition. A protected target without a
// session diverts to the login page and remembers the original target; the
// pending target survives unrelated non-protected navigations until it is
// consumed or superseded.
func (s *NavigationService) RequestNavigation(target entities.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target.Protected() && !s.authed {
		s.state.PendingTarget = target
		s.state.CurrentPage = entities.PageLogin
	} else {
		s.state.CurrentPage = target
	}
	s.persistLocked()
}

// OnAuthStatusChanged reacts to an observed session transition. Repeated
// notifications with the same status are absorbed.
func (s *NavigationService) OnAuthStatusChanged(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if authenticated == s.authed {
		return
	}
	s.applyAuthStatusLocked(authenticated)
}

func (s *NavigationService) applyAuthStatusLocked(authenticated bool) {
	s.authed = authenticated

	if authenticated {
		if s.state.CurrentPage == entities.PageLogin || s.state.CurrentPage == entities.PageSignUp {
			target := s.state.PendingTarget
			if target == "" {
				target = entities.PageDashboard
			}
			s.state.CurrentPage = target
			s.state.PendingTarget = ""
			s.persistLocked()
		}
		return
	}

	if s.state.CurrentPage.Protected() {
		// Forced exit on logout or expiry. The pending target is unrelated
		// to this transition and is left alone.
		s.state.CurrentPage = entities.PageHome
		s.persistLocked()
	}
}

// Logout asks the provider to end the session. The page change happens when
// the provider's notification comes back, so the UI never runs ahead of the
// confirmed session state.
func (s *NavigationService) Logout(ctx context.Context) error {
	return s.auth.SignOut(ctx)
}

// State returns a copy of the navigation tuple.
func (s *NavigationService) State() entities.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Authenticated reports the last observed session status.
func (s *NavigationService) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

func (s *NavigationService) persistLocked() {
	s.store.Save(s.state.CurrentPage.String(), s.state.PendingTarget.String())
}
