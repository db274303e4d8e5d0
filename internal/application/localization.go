package application

import (
	"context"
	"log"
	"sync"

	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

// LocalizationService owns the active locale and resolves display text
// through the Translator port.
type LocalizationService struct {
	mu         sync.RWMutex
	translator output.Translator
	prefs      output.LocalePreferenceStore
	active     entities.Locale

	// chosen records whether the active locale reflects a deliberate user
	// choice (stored preference or SetLocale) rather than the default.
	chosen bool
}

// NewLocalizationService restores the persisted locale preference, falling
// back to defaultLocale (and ultimately to the base locale) when the stored
// value is absent or not supported.
func NewLocalizationService(ctx context.Context, translator output.Translator, prefs output.LocalePreferenceStore, defaultLocale string) *LocalizationService {
	active, ok := entities.ParseLocale(defaultLocale)
	if !ok {
		active = entities.BaseLocale
	}

	chosen := false
	stored, err := prefs.Load(ctx)
	if err != nil {
		log.Printf("localization: load preference: %v", err)
	} else if locale, ok := entities.ParseLocale(stored); ok {
		active = locale
		chosen = true
	}

	return &LocalizationService{
		translator: translator,
		prefs:      prefs,
		active:     active,
		chosen:     chosen,
	}
}

// SetLocale switches the active locale and persists the choice. An
// unsupported code is ignored so a stray stored preference can never
// corrupt the active locale.
func (s *LocalizationService) SetLocale(ctx context.Context, code string) {
	locale, ok := entities.ParseLocale(code)
	if !ok {
		return
	}

	s.mu.Lock()
	s.active = locale
	s.chosen = true
	s.mu.Unlock()

	if err := s.prefs.Save(ctx, locale.String()); err != nil {
		log.Printf("localization: save preference: %v", err)
	}
}

// Resolve returns the text for key in the active locale. Missing entries
// fall back to the base locale and finally to the key itself, so a render
// pass can never fail on a translation gap.
func (s *LocalizationService) Resolve(key string, params map[string]any) string {
	s.mu.RLock()
	locale := s.active
	s.mu.RUnlock()
	return s.translator.T(locale.String(), key, params)
}

// ResolveIn is Resolve with an explicit locale, for callers that negotiate a
// locale per request instead of using the active one.
func (s *LocalizationService) ResolveIn(locale entities.Locale, key string, params map[string]any) string {
	return s.translator.T(locale.String(), key, params)
}

// ActiveLocale returns the locale used by subsequent Resolve calls.
func (s *LocalizationService) ActiveLocale() entities.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// LocaleChosen reports whether the active locale was deliberately chosen, as
// opposed to inherited from the configured default. Content negotiation only
// applies while it is false.
func (s *LocalizationService) LocaleChosen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chosen
}
