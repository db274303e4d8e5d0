package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropguru/internal/application"
	"cropguru/internal/domain/entities"
)

// fakeAuth is an in-memory AuthProvider implementing just enough of the
// session lifecycle for the controller.
type fakeAuth struct {
	session   *entities.AuthSession
	callbacks []func(*entities.AuthSession)
	signOuts  int
}

func (f *fakeAuth) CurrentSession(context.Context) (*entities.AuthSession, error) {
	return f.session, nil
}

func (f *fakeAuth) OnSessionChange(fn func(*entities.AuthSession)) {
	f.callbacks = append(f.callbacks, fn)
}

func (f *fakeAuth) SignUp(context.Context, string, string, string) (*entities.AuthSession, error) {
	return nil, nil
}

func (f *fakeAuth) SignIn(context.Context, string, string) (*entities.AuthSession, error) {
	return nil, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signOuts++
	f.notify(nil)
	return nil
}

func (f *fakeAuth) notify(session *entities.AuthSession) {
	f.session = session
	for _, fn := range f.callbacks {
		fn(session)
	}
}

type memNavStore struct {
	current string
	pending string
	saves   int
}

func (m *memNavStore) Load() (string, string) {
	return m.current, m.pending
}

func (m *memNavStore) Save(current, pending string) {
	m.current, m.pending = current, pending
	m.saves++
}

func newNavService(t *testing.T, auth *fakeAuth, store *memNavStore) *application.NavigationService {
	t.Helper()
	return application.NewNavigationService(context.Background(), auth, store)
}

func TestRequestNavigationProtectedRedirect(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{current: "Home"})

	svc.RequestNavigation(entities.PageDashboard)

	state := svc.State()
	assert.Equal(t, entities.PageLogin, state.CurrentPage)
	assert.Equal(t, entities.PageDashboard, state.PendingTarget)
}

func TestResumeAfterLogin(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{current: "Home"})

	svc.RequestNavigation(entities.PageDashboard)
	svc.OnAuthStatusChanged(true)

	state := svc.State()
	assert.Equal(t, entities.PageDashboard, state.CurrentPage)
	assert.Empty(t, state.PendingTarget)
}

func TestDefaultLandingWithoutPendingTarget(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{})

	svc.RequestNavigation(entities.PageLogin)
	svc.OnAuthStatusChanged(true)

	assert.Equal(t, entities.PageDashboard, svc.State().CurrentPage)
}

func TestForcedExitOnLogout(t *testing.T) {
	auth := &fakeAuth{session: &entities.AuthSession{UserID: "u1"}}
	svc := newNavService(t, auth, &memNavStore{current: "Satellite Imagery"})

	require.Equal(t, entities.PageSatellite, svc.State().CurrentPage)

	svc.OnAuthStatusChanged(false)

	assert.Equal(t, entities.PageHome, svc.State().CurrentPage)
}

func TestAuthNotificationIdempotence(t *testing.T) {
	auth := &fakeAuth{}
	store := &memNavStore{}
	svc := newNavService(t, auth, store)

	svc.RequestNavigation(entities.PageDashboard)
	svc.OnAuthStatusChanged(true)
	afterFirst := svc.State()
	savesAfterFirst := store.saves

	svc.OnAuthStatusChanged(true)

	assert.Equal(t, afterFirst, svc.State())
	assert.Equal(t, savesAfterFirst, store.saves, "duplicate notification must not mutate state")
}

func TestPendingTargetSurvivesUnrelatedNavigation(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{})

	svc.RequestNavigation(entities.PageSatellite)
	svc.RequestNavigation(entities.PageAbout)
	require.Equal(t, entities.PageSatellite, svc.State().PendingTarget)

	svc.RequestNavigation(entities.PageLogin)
	svc.OnAuthStatusChanged(true)

	state := svc.State()
	assert.Equal(t, entities.PageSatellite, state.CurrentPage)
	assert.Empty(t, state.PendingTarget)
}

func TestPendingTargetSupersededByNewRedirect(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{})

	svc.RequestNavigation(entities.PageSatellite)
	svc.RequestNavigation(entities.PageSchemes)
	svc.OnAuthStatusChanged(true)

	assert.Equal(t, entities.PageSchemes, svc.State().CurrentPage)
}

func TestInvalidPersistedPageFallsBackToHome(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{current: "NotARealPage"})

	assert.Equal(t, entities.PageHome, svc.State().CurrentPage)
}

func TestPersistedNonProtectedPendingTargetDiscarded(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{current: "Login", pending: "About Us"})

	assert.Empty(t, svc.State().PendingTarget)
}

func TestRestoredProtectedPageForcedHomeWithoutSession(t *testing.T) {
	auth := &fakeAuth{}
	svc := newNavService(t, auth, &memNavStore{current: "Dashboard"})

	assert.Equal(t, entities.PageHome, svc.State().CurrentPage)
	assert.False(t, svc.Authenticated())
}

func TestStartupWithSessionResumesFromLoginPage(t *testing.T) {
	auth := &fakeAuth{session: &entities.AuthSession{UserID: "u1"}}
	svc := newNavService(t, auth, &memNavStore{current: "Login", pending: "Schemes & Benefits"})

	state := svc.State()
	assert.Equal(t, entities.PageSchemes, state.CurrentPage)
	assert.Empty(t, state.PendingTarget)
	assert.True(t, svc.Authenticated())
}

func TestLogoutDelegatesToProvider(t *testing.T) {
	auth := &fakeAuth{session: &entities.AuthSession{UserID: "u1"}}
	svc := newNavService(t, auth, &memNavStore{current: "Dashboard"})

	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, 1, auth.signOuts)
	// The page change is driven by the provider's notification.
	assert.Equal(t, entities.PageHome, svc.State().CurrentPage)
	assert.False(t, svc.Authenticated())
}

func TestStatePersistedOnEveryChange(t *testing.T) {
	auth := &fakeAuth{}
	store := &memNavStore{}
	svc := newNavService(t, auth, store)

	svc.RequestNavigation(entities.PageDashboard)
	assert.Equal(t, "Login", store.current)
	assert.Equal(t, "Dashboard", store.pending)

	svc.OnAuthStatusChanged(true)
	assert.Equal(t, "Dashboard", store.current)
	assert.Empty(t, store.pending)
}
