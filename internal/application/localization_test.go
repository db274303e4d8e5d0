package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cropguru/internal/application"
	"cropguru/internal/domain/entities"
)

// stubTranslator records the locale each lookup was made with.
type stubTranslator struct {
	lastLocale string
}

func (s *stubTranslator) T(locale, key string, _ map[string]any) string {
	s.lastLocale = locale
	return locale + ":" + key
}

type memPrefStore struct {
	value   string
	loadErr error
	saved   []string
}

func (m *memPrefStore) Load(context.Context) (string, error) {
	return m.value, m.loadErr
}

func (m *memPrefStore) Save(_ context.Context, code string) error {
	m.saved = append(m.saved, code)
	return nil
}

func TestDefaultLocaleIsEnglish(t *testing.T) {
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{}, "en")
	assert.Equal(t, entities.LocaleEnglish, svc.ActiveLocale())
}

func TestSetLocaleSwitchesAndPersists(t *testing.T) {
	prefs := &memPrefStore{}
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, prefs, "en")

	svc.SetLocale(context.Background(), "hi")

	assert.Equal(t, entities.LocaleHindi, svc.ActiveLocale())
	assert.Equal(t, []string{"hi"}, prefs.saved)
}

func TestSetLocaleUnsupportedIsNoOp(t *testing.T) {
	prefs := &memPrefStore{}
	tr := &stubTranslator{}
	svc := application.NewLocalizationService(context.Background(), tr, prefs, "en")

	svc.SetLocale(context.Background(), "xx")

	assert.Equal(t, entities.LocaleEnglish, svc.ActiveLocale())
	assert.Empty(t, prefs.saved)
	assert.Equal(t, "en:greeting", svc.Resolve("greeting", nil))
}

func TestResolveUsesActiveLocale(t *testing.T) {
	tr := &stubTranslator{}
	svc := application.NewLocalizationService(context.Background(), tr, &memPrefStore{}, "en")

	svc.SetLocale(context.Background(), "ta")

	assert.Equal(t, "ta:page.home", svc.Resolve("page.home", nil))
	assert.Equal(t, "ta", tr.lastLocale)
}

func TestStoredPreferenceRestored(t *testing.T) {
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{value: "pa"}, "en")
	assert.Equal(t, entities.LocalePunjabi, svc.ActiveLocale())
}

func TestCorruptStoredPreferenceDiscarded(t *testing.T) {
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{value: "zz"}, "en")
	assert.Equal(t, entities.LocaleEnglish, svc.ActiveLocale())
}

func TestPreferenceLoadFailureFallsBackToDefault(t *testing.T) {
	prefs := &memPrefStore{loadErr: errors.New("store down")}
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, prefs, "hi")
	assert.Equal(t, entities.LocaleHindi, svc.ActiveLocale())
}

func TestLocaleChosenTracksDeliberateChoice(t *testing.T) {
	svc := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{}, "en")
	assert.False(t, svc.LocaleChosen())

	svc.SetLocale(context.Background(), "xx")
	assert.False(t, svc.LocaleChosen())

	svc.SetLocale(context.Background(), "en")
	assert.True(t, svc.LocaleChosen())
}

func TestStoredPreferenceCountsAsChosen(t *testing.T) {
	chosen := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{value: "pa"}, "en")
	assert.True(t, chosen.LocaleChosen())

	corrupt := application.NewLocalizationService(context.Background(), &stubTranslator{}, &memPrefStore{value: "zz"}, "en")
	assert.False(t, corrupt.LocaleChosen())
}

func TestResolveInIgnoresActiveLocale(t *testing.T) {
	tr := &stubTranslator{}
	svc := application.NewLocalizationService(context.Background(), tr, &memPrefStore{}, "en")

	assert.Equal(t, "te:page.home", svc.ResolveIn(entities.LocaleTelugu, "page.home", nil))
	assert.Equal(t, entities.LocaleEnglish, svc.ActiveLocale())
}
