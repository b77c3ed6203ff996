// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"slices"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var catalogsMu sync.RWMutex

var catalogs = map[string]*Catalog{
	BaseLocale: enUSCatalog,
	"pt-BR":    ptBRCatalog,
}

var current = buildNegotiator()

type negotiator struct {
	matcher language.Matcher
	locales []string
}

// GetCatalog returns the catalog that best matches locale.
//
// locale may be a single tag or an Accept-Language style list
// ("pt-BR,pt;q=0.9,en;q=0.5"). Exact registrations win, then the language
// matcher picks the closest supported locale. Falls back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return mustLookup(BaseLocale)
	}
	if c, ok := lookupCatalog(requested); ok {
		return c
	}
	return mustLookup(Negotiate(requested))
}

// Negotiate returns the supported locale closest to the Accept-Language
// value, or BaseLocale when nothing matches.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	catalogsMu.RLock()
	n := current
	catalogsMu.RUnlock()
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return BaseLocale
	}
	return n.locales[index]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale and rebuilds the
// language matcher.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	catalogs[locale] = cat
	catalogsMu.Unlock()

	n := buildNegotiator()
	catalogsMu.Lock()
	current = n
	catalogsMu.Unlock()
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func mustLookup(locale string) *Catalog {
	if c, ok := lookupCatalog(locale); ok {
		return c
	}
	c, _ := lookupCatalog(BaseLocale)
	return c
}

// supportedLocales lists registered locales with BaseLocale first so the
// matcher uses it as the default.
func supportedLocales() []string {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	out := []string{BaseLocale}
	for locale := range catalogs {
		if locale != BaseLocale {
			out = append(out, locale)
		}
	}
	slices.Sort(out[1:])
	return out
}

func buildNegotiator() negotiator {
	locales := supportedLocales()
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(l))
	}
	return negotiator{matcher: language.NewMatcher(tags), locales: locales}
}
