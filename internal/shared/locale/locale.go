// Package locale normalizes console language tags. The console persists a
// locale preference ("en", "ar", sometimes a full BCP 47 tag) and the
// backend expects the uppercase two-letter form.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"sanad/internal/shared/constants"
)

var supported = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
})

// Normalize parses a locale preference and returns the canonical
// uppercase two-letter language field ("EN" or "AR"). Unknown or empty
// input falls back to English.
func Normalize(pref string) string {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return constants.DefaultLanguage
	}

	tag, err := language.Parse(pref)
	if err != nil {
		return constants.DefaultLanguage
	}

	matched, _, _ := supported.Match(tag)
	base, _ := matched.Base()
	return strings.ToUpper(base.String())
}

// IsSupported reports whether the given normalized language field is one
// the console exchanges.
func IsSupported(lang string) bool {
	return lang == constants.LanguageEnglish || lang == constants.LanguageArabic
}
