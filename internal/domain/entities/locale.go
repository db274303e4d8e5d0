package entities

// Locale identifies a supported display language.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
	LocalePunjabi Locale = "pa"
	LocaleTamil   Locale = "ta"
	LocaleTelugu  Locale = "te"
)

// BaseLocale is the locale every dictionary falls back to.
const BaseLocale = LocaleEnglish

// SupportedLocales lists every locale the application ships dictionaries for.
var SupportedLocales = []Locale{
	LocaleEnglish,
	LocaleHindi,
	LocalePunjabi,
	LocaleTamil,
	LocaleTelugu,
}

var localeNames = map[Locale]string{
	LocaleEnglish: "English",
	LocaleHindi:   "हिन्दी",
	LocalePunjabi: "ਪੰਜਾਬੀ",
	LocaleTamil:   "தமிழ்",
	LocaleTelugu:  "తెలుగు",
}

// ParseLocale validates a raw string against the supported locale set.
func ParseLocale(raw string) (Locale, bool) {
	for _, l := range SupportedLocales {
		if string(l) == raw {
			return l, true
		}
	}
	return "", false
}

// NativeName returns the locale's self-designation, e.g. "हिन्दी" for hi.
func (l Locale) NativeName() string {
	return localeNames[l]
}

func (l Locale) String() string {
	return string(l)
}
