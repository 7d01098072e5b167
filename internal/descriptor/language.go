package descriptor

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no supported language matches.
const DefaultLanguage = "en"

var (
	languages = []string{"en", "es"}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Spanish})
)

// Languages returns the supported language codes.
func Languages() []string {
	return append([]string(nil), languages...)
}

// MatchLanguage returns the supported language code that is the closest to lang.
// "es-MX" matches "es"; an unsupported or malformed tag falls back to DefaultLanguage.
func MatchLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}
	return languages[idx]
}

// NegotiateLanguage picks a supported language from an Accept-Language header.
// It reports false if the header does not name any supported language.
func NegotiateLanguage(acceptLanguage string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return languages[idx], true
}
