package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the language of exported labels.
type Locale int

const (
	// French is the primary locale and the fallback for anything unrecognized.
	French Locale = iota
	English
)

var (
	englishBase, _ = language.English.Base()
	frenchBase, _  = language.French.Base()
)

// ParseLocale maps a language tag or an Accept-Language list onto a supported
// locale. The first listed language that is English or French wins; empty,
// malformed or otherwise unsupported input yields French.
func ParseLocale(raw string) Locale {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return French
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil {
		return French
	}
	for _, tag := range tags {
		// Inferred bases (und, *) do not count as a choice.
		base, confidence := tag.Base()
		if confidence != language.Exact {
			continue
		}
		switch base {
		case englishBase:
			return English
		case frenchBase:
			return French
		}
	}
	return French
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.French
}

// String returns the two-letter code.
func (l Locale) String() string {
	if l == English {
		return "en"
	}
	return "fr"
}
