package i18n

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// AlternateLink is the equivalent of a page in one locale.
type AlternateLink struct {
	Lang Lang   `json:"lang" yaml:"lang"`
	Href string `json:"href" yaml:"href"`
}

// Resolver maps URL paths to locales and back.  It is immutable after construction.
type Resolver struct {
	basePath    string
	defaultLang Lang
	locales     []Locale
	index       map[Lang]int
	catalog     *Catalog
	matcher     language.Matcher
}

// NewResolver builds a resolver for cfg.  A nil catalog loads the embedded message files for the configured locales.
func NewResolver(cfg Config, catalog *Catalog) (resolver *Resolver, err error) {
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid locale configuration")
		return resolver, err
	}

	cfg = cfg.Normalized()

	locales := make([]Locale, len(cfg.Locales))
	index := make(map[Lang]int, len(cfg.Locales))
	tags := make([]language.Tag, len(cfg.Locales))
	for i, l := range cfg.Locales {
		tag := l.Lang
		locales[i] = l
		index[tag] = i
		// Unparseable tags still route; they just never win negotiation.
		tags[i] = language.Make(string(tag))
	}

	defaultLang := cfg.DefaultLang

	if catalog == nil {
		catalog, err = NewCatalog(defaultLang, cfg.Langs()...)
		if err != nil {
			return resolver, err
		}
	}

	// The matcher falls back to its first tag, so the default goes first.
	defaultIdx := index[defaultLang]
	ordered := append([]language.Tag{tags[defaultIdx]}, tags...)

	resolver = &Resolver{
		basePath:    normalizeBasePath(cfg.BasePath),
		defaultLang: defaultLang,
		locales:     locales,
		index:       index,
		catalog:     catalog,
		matcher:     language.NewMatcher(ordered),
	}

	return resolver, err
}

// Default returns the default locale.
func (r *Resolver) Default() (lang Lang) {
	lang = r.defaultLang
	return lang
}

// BasePath returns the normalized deployment base path ("" for root deployments).
func (r *Resolver) BasePath() (base string) {
	base = r.basePath
	return base
}

// Locales returns the supported locales in declaration order.
func (r *Resolver) Locales() (locales []Locale) {
	locales = make([]Locale, len(r.locales))
	copy(locales, r.locales)
	return locales
}

// Catalog returns the translation catalog backing the resolver.
func (r *Resolver) Catalog() (catalog *Catalog) {
	catalog = r.catalog
	return catalog
}

// Parse maps a user supplied tag ("zh-TW", "zh_tw") to a supported locale.
func (r *Resolver) Parse(tag string) (lang Lang, ok bool) {
	candidate := Normalize(tag)
	_, ok = r.index[candidate]
	if ok {
		lang = candidate
	}
	return lang, ok
}

// IsSupported reports whether lang is one of the configured locales.
func (r *Resolver) IsSupported(lang Lang) (ok bool) {
	_, ok = r.Parse(string(lang))
	return ok
}

// orDefault resolves lang, falling back to the default locale.
func (r *Resolver) orDefault(lang Lang) (resolved Lang) {
	resolved, ok := r.Parse(string(lang))
	if !ok {
		resolved = r.defaultLang
	}
	return resolved
}

// LanguageFromURL returns the locale named by the first path segment after the base path, or the default locale.
func (r *Resolver) LanguageFromURL(path string) (lang Lang) {
	p, _ := splitSuffix(path)
	p = r.trimBase(ensureLeadingSlash(p))

	segment, _, _ := strings.Cut(strings.TrimLeft(p, "/"), "/")

	lang, ok := r.Parse(segment)
	if !ok || segment == "" {
		lang = r.defaultLang
	}
	return lang
}

// LocalizedPath rewrites path for lang.  Any base path and locale prefix already on path are dropped first.
func (r *Resolver) LocalizedPath(path string, lang Lang) (localized string) {
	rest, suffix := r.stripPrefixes(path)

	localized = r.prefix(r.orDefault(lang)) + "/" + rest + suffix
	return localized
}

// AlternateLinks returns the href of currentPath in every supported locale.
func (r *Resolver) AlternateLinks(currentPath string) (links []AlternateLink) {
	rest, suffix := r.stripPrefixes(currentPath)

	links = make([]AlternateLink, 0, len(r.locales))
	for _, l := range r.locales {
		links = append(links, AlternateLink{
			Lang: l.Lang,
			Href: r.prefix(l.Lang) + "/" + rest + suffix,
		})
	}
	return links
}

// Translations returns the translation table for lang, or the default locale's table.
func (r *Resolver) Translations(lang Lang) (table TranslationTable) {
	table = r.catalog.Table(r.orDefault(lang))
	return table
}

// Translate renders a single message for lang with template data.
func (r *Resolver) Translate(lang Lang, messageID string, data map[string]any) (text string) {
	text = r.catalog.Translate(r.orDefault(lang), messageID, data)
	return text
}

// TranslatePlural renders a single pluralized message for lang.
func (r *Resolver) TranslatePlural(lang Lang, messageID string, count int, data map[string]any) (text string) {
	text = r.catalog.TranslatePlural(r.orDefault(lang), messageID, count, data)
	return text
}

// Negotiate picks the supported locale that best fits an Accept-Language header.
func (r *Resolver) Negotiate(acceptLanguage string) (lang Lang) {
	lang = r.defaultLang

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return lang
	}

	_, idx, confidence := r.matcher.Match(tags...)
	if confidence == language.No || idx == 0 {
		return lang
	}

	lang = r.locales[idx-1].Lang
	return lang
}

// prefix returns the base path plus the locale segment for non-default locales.
func (r *Resolver) prefix(lang Lang) (prefix string) {
	prefix = r.basePath
	if lang != r.defaultLang {
		prefix += "/" + string(lang)
	}
	return prefix
}

// stripPrefixes removes the base path and any leading locale segments, returning the remainder without its leading slash.
func (r *Resolver) stripPrefixes(path string) (rest, suffix string) {
	p, suffix := splitSuffix(path)
	p = r.trimBase(ensureLeadingSlash(p))

	// Stacked locale segments ("/en/zh-tw/about") are all dropped
	rest = strings.TrimLeft(p, "/")
	for rest != "" {
		segment, tail, _ := strings.Cut(rest, "/")
		if _, ok := r.Parse(segment); !ok || segment == "" {
			break
		}
		rest = strings.TrimLeft(tail, "/")
	}

	return rest, suffix
}

// trimBase removes the base path from p on a segment boundary.
func (r *Resolver) trimBase(p string) (trimmed string) {
	trimmed = p
	if r.basePath == "" {
		return trimmed
	}

	if p == r.basePath {
		trimmed = "/"
		return trimmed
	}

	if strings.HasPrefix(p, r.basePath+"/") {
		trimmed = p[len(r.basePath):]
	}
	return trimmed
}

func ensureLeadingSlash(p string) (result string) {
	result = p
	if !strings.HasPrefix(result, "/") {
		result = "/" + result
	}
	return result
}

// splitSuffix separates a query string or fragment from the path.
func splitSuffix(path string) (p, suffix string) {
	p = path
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		p = path[:i]
		suffix = path[i:]
	}
	return p, suffix
}
