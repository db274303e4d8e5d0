package input

import (
	"context"

	"cropguru/internal/domain/entities"
)

// LocalizationUseCase resolves display text for the active locale.
type LocalizationUseCase interface {
	// SetLocale switches the active locale. Unsupported codes are ignored.
	SetLocale(ctx context.Context, code string)
	// Resolve returns the text for key in the active locale, falling back to
	// the base locale and finally to the key itself. It never fails.
	Resolve(key string, params map[string]any) string
	// ResolveIn is Resolve with an explicit locale instead of the active one.
	ResolveIn(locale entities.Locale, key string, params map[string]any) string
	ActiveLocale() entities.Locale
	// LocaleChosen reports whether the active locale was deliberately chosen
	// (stored preference or SetLocale) rather than defaulted.
	LocaleChosen() bool
}
