package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for {placeholder} substitution (may be nil).
	// Lookup falls back to the base locale, then to the key itself; T never
	// fails.
	T(locale, key string, data map[string]any) string
}
