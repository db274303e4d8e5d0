package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropguru/internal/infrastructure/i18n"
)

func TestTranslatorLooksUpActiveLocale(t *testing.T) {
	tr := i18n.NewTranslator("en")

	assert.Equal(t, "होम", tr.T("hi", "page.home", nil))
	assert.Equal(t, "ਲਾਗਇਨ", tr.T("pa", "page.login", nil))
	assert.Equal(t, "Home", tr.T("en", "page.home", nil))
}

func TestTranslatorFallsBackToBaseLocale(t *testing.T) {
	tr := i18n.NewTranslator("en")

	// schemes.title is not translated in the Tamil dictionary.
	assert.Equal(t, "Government Schemes & Benefits", tr.T("ta", "schemes.title", nil))
	// page.fertilizerHub only exists in the base dictionary.
	assert.Equal(t, "Fertilizer Hub", tr.T("hi", "page.fertilizerHub", nil))
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := i18n.NewTranslator("en")

	for _, locale := range []string{"en", "hi", "pa", "ta", "te", ""} {
		assert.Equal(t, "no.such.key", tr.T(locale, "no.such.key", nil))
	}
}

func TestTranslatorInterpolation(t *testing.T) {
	tr := i18n.NewTranslator("en")

	got := tr.T("en", "satellite.result.area", map[string]any{"area": 12.5})
	assert.Equal(t, "12.5 Hectares Analyzed", got)

	// Interpolation applies to the fallback template too.
	got = tr.T("hi", "satellite.result.area", map[string]any{"area": 3})
	assert.Equal(t, "3 हेक्टेयर का विश्लेषण किया गया", got)
}

func TestTranslatorUnmatchedPlaceholderLeftLiteral(t *testing.T) {
	tr := i18n.NewTranslator("en")

	got := tr.T("en", "satellite.result.area", map[string]any{"acreage": 12})
	assert.Equal(t, "{area} Hectares Analyzed", got)
}

func TestTranslatorEmptyKey(t *testing.T) {
	tr := i18n.NewTranslator("en")
	assert.Empty(t, tr.T("en", "", nil))
}
