package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Label keys used by the CV export.
const (
	KeySummary    = "cv.summary"
	KeyExperience = "cv.experience"
	KeyEducation  = "cv.education"
	KeySkills     = "cv.skills"
	KeyLanguages  = "cv.languages"
	KeyVolunteer  = "cv.volunteer"
	KeyInterests  = "cv.interests"
	KeyPresent    = "cv.present"
)

//go:embed messages/*.json
var bundleFiles embed.FS

var bundles = map[Locale]string{
	French:  "messages/messages_fr.json",
	English: "messages/messages_en.json",
}

// Catalog resolves label keys against the embedded message bundles. It is
// read-only after construction and safe for concurrent use.
type Catalog struct {
	builder *catalog.Builder
	known   map[Locale]map[string]struct{}
}

// NewCatalog loads the embedded bundles.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		builder: catalog.NewBuilder(),
		known:   make(map[Locale]map[string]struct{}, len(bundles)),
	}
	for locale, path := range bundles {
		raw, err := bundleFiles.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", path, err)
		}
		var messages map[string]string
		if err := json.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("decode bundle %s: %w", path, err)
		}
		if err := c.add(locale.Tag(), locale, messages); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for callers with no error path; the bundles are embedded.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) add(tag language.Tag, locale Locale, messages map[string]string) error {
	keys := make(map[string]struct{}, len(messages))
	for key, text := range messages {
		if err := c.builder.SetString(tag, key, text); err != nil {
			return fmt.Errorf("register %s/%s: %w", tag, key, err)
		}
		keys[key] = struct{}{}
	}
	c.known[locale] = keys
	return nil
}

// Resolve returns the localized text for key, or key itself when the locale has
// no entry for it.
func (c *Catalog) Resolve(key string, locale Locale) string {
	if _, ok := c.known[locale][key]; !ok || strings.ContainsRune(key, '%') {
		return key
	}
	p := message.NewPrinter(locale.Tag(), message.Catalog(c.builder))
	return p.Sprintf(key)
}
