package i18n

import (
	"strings"

	"github.com/pkg/errors"
)

// Lang is a supported locale tag as it appears in URLs and message files.
type Lang string

const (
	// English is the default locale.
	English Lang = "en"
	// TraditionalChinese is the Taiwanese Mandarin locale.
	TraditionalChinese Lang = "zh-tw"
)

// String returns the tag.
func (l Lang) String() (result string) {
	result = string(l)
	return result
}

// Locale is a supported locale with its display name.
type Locale struct {
	Lang Lang   `json:"lang" yaml:"lang"`
	Name string `json:"name" yaml:"name"`
}

// Config describes the locale set and deployment base path.
type Config struct {
	BasePath    string   `json:"base_path"      yaml:"base_path"`
	DefaultLang Lang     `json:"default_locale" yaml:"default_locale"`
	Locales     []Locale `json:"locales"        yaml:"locales"`
}

// DefaultConfig returns the English/Traditional Chinese locale set deployed at the site root.
func DefaultConfig() (cfg Config) {
	cfg = Config{
		BasePath:    "",
		DefaultLang: English,
		Locales: []Locale{
			{Lang: English, Name: "English"},
			{Lang: TraditionalChinese, Name: "繁體中文"},
		},
	}
	return cfg
}

// Normalize folds a user supplied tag ("zh-TW", " zh_tw ") into the lower-case, hyphenated form used for routing.
func Normalize(tag string) (lang Lang) {
	lang = Lang(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "_", "-"))
	return lang
}

// Langs returns the configured tags, normalized, in declaration order.
func (c Config) Langs() (langs []Lang) {
	langs = make([]Lang, 0, len(c.Locales))
	for _, l := range c.Locales {
		langs = append(langs, Normalize(string(l.Lang)))
	}
	return langs
}

// Normalized returns a copy of c with every tag normalized.
func (c Config) Normalized() (normalized Config) {
	normalized = Config{
		BasePath:    c.BasePath,
		DefaultLang: Normalize(string(c.DefaultLang)),
		Locales:     make([]Locale, 0, len(c.Locales)),
	}
	for _, l := range c.Locales {
		normalized.Locales = append(normalized.Locales, Locale{Lang: Normalize(string(l.Lang)), Name: l.Name})
	}
	return normalized
}

// Validate checks the locale set is usable for routing.
func (c Config) Validate() (err error) {
	if len(c.Locales) == 0 {
		err = errors.New("at least one locale is required")
		return err
	}

	seen := make(map[Lang]bool, len(c.Locales))
	for i, l := range c.Locales {
		tag := Normalize(string(l.Lang))
		if tag == "" {
			err = errors.Errorf("locale at index %d has an empty tag", i)
			return err
		}
		if strings.ContainsAny(string(tag), "/?#") {
			err = errors.Errorf("locale tag %q is not a valid path segment", l.Lang)
			return err
		}
		if seen[tag] {
			err = errors.Errorf("duplicate locale %q", l.Lang)
			return err
		}
		seen[tag] = true
	}

	if !seen[Normalize(string(c.DefaultLang))] {
		err = errors.Errorf("default locale %q is not in the locale list", c.DefaultLang)
		return err
	}

	if strings.ContainsAny(c.BasePath, "?#") {
		err = errors.Errorf("base path %q must not contain a query or fragment", c.BasePath)
		return err
	}

	return err
}

// normalizeBasePath turns "", "/" and "site/" style values into "" or "/site".
func normalizeBasePath(base string) (normalized string) {
	normalized = strings.Trim(strings.TrimSpace(base), "/")
	if normalized == "" {
		return normalized
	}
	normalized = "/" + normalized
	return normalized
}
