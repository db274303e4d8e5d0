package httpapi

import (
	"golang.org/x/text/language"

	"cropguru/internal/domain/entities"
)

var localeMatcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, 0, len(entities.SupportedLocales))
	for _, l := range entities.SupportedLocales {
		tags = append(tags, language.MustParse(string(l)))
	}
	return tags
}())

// matchAcceptLanguage picks the best supported locale for an Accept-Language
// header value. An empty or unparseable header yields the base locale.
func matchAcceptLanguage(header string) entities.Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return entities.BaseLocale
	}
	_, index, _ := localeMatcher.Match(tags...)
	return entities.SupportedLocales[index]
}
