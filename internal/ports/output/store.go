package output

import "context"

// NavigationStateStore persists the navigation tuple for the lifetime of a
// session. Values are raw strings; the caller validates them against the
// closed page set on load. An absent entry is the empty string.
type NavigationStateStore interface {
	Load() (currentPage, pendingTarget string)
	Save(currentPage, pendingTarget string)
}

// LocalePreferenceStore persists the last explicitly chosen locale across
// sessions. Load returns "" when no preference has been saved.
type LocalePreferenceStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, code string) error
}
