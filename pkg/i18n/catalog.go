package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var embeddedMessages embed.FS

// TranslationTable maps message ids to localized strings.
type TranslationTable map[string]string

// pluralKeys are the go-i18n keys that mark a TOML table as a single message.
//
//nolint:gochecknoglobals // Fixed go-i18n vocabulary
var pluralKeys = map[string]bool{
	"id": true, "description": true, "hash": true, "leftdelim": true, "rightdelim": true,
	"zero": true, "one": true, "two": true, "few": true, "many": true, "other": true,
}

// Catalog holds the message files of every supported locale.
type Catalog struct {
	bundle      *i18n.Bundle
	defaultLang Lang
	ids         []string
	raw         map[Lang]TranslationTable
}

// NewCatalog loads the message files shipped with the binary.
func NewCatalog(defaultLang Lang, langs ...Lang) (catalog *Catalog, err error) {
	var sub fs.FS
	sub, err = fs.Sub(embeddedMessages, "messages")
	if err != nil {
		err = errors.Wrap(err, "failed to open embedded messages")
		return catalog, err
	}

	catalog, err = newCatalog(sub, defaultLang, langs)
	return catalog, err
}

// NewCatalogFromDir loads messages.<lang>.toml files from dir.
func NewCatalogFromDir(dir string, defaultLang Lang, langs ...Lang) (catalog *Catalog, err error) {
	info, statErr := os.Stat(dir)
	if statErr != nil || !info.IsDir() {
		err = errors.Errorf("messages directory not found: %s", dir)
		return catalog, err
	}

	catalog, err = newCatalog(os.DirFS(dir), defaultLang, langs)
	if err != nil {
		err = errors.Wrapf(err, "failed to load messages from %s", dir)
		return catalog, err
	}
	return catalog, err
}

func newCatalog(fsys fs.FS, defaultLang Lang, langs []Lang) (catalog *Catalog, err error) {
	var defaultTag language.Tag
	defaultTag, err = language.Parse(string(defaultLang))
	if err != nil {
		err = errors.Wrapf(err, "invalid default locale %q", defaultLang)
		return catalog, err
	}

	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	raw := make(map[Lang]TranslationTable, len(langs))
	for _, lang := range langs {
		name := fmt.Sprintf("messages.%s.toml", lang)

		var data []byte
		data, err = fs.ReadFile(fsys, name)
		if err != nil {
			err = errors.Wrapf(err, "failed to read message file %s", name)
			return catalog, err
		}

		_, err = bundle.ParseMessageFileBytes(data, name)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse message file %s", name)
			return catalog, err
		}

		var tree map[string]any
		err = toml.Unmarshal(data, &tree)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode message file %s", name)
			return catalog, err
		}

		table := TranslationTable{}
		flatten("", tree, table)
		raw[lang] = table
	}

	defaultTable, ok := raw[defaultLang]
	if !ok {
		err = errors.Errorf("no message file loaded for default locale %q", defaultLang)
		return catalog, err
	}

	ids := make([]string, 0, len(defaultTable))
	for id := range defaultTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	catalog = &Catalog{
		bundle:      bundle,
		defaultLang: defaultLang,
		ids:         ids,
		raw:         raw,
	}
	return catalog, err
}

// flatten turns nested TOML tables into dotted ids.  Plural tables collapse to their "other" form.
func flatten(prefix string, tree map[string]any, out TranslationTable) {
	for key, value := range tree {
		id := key
		if prefix != "" {
			id = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[id] = v
		case map[string]any:
			if isMessageTable(v) {
				other, _ := v["other"].(string)
				out[id] = other
				continue
			}
			flatten(id, v, out)
		}
	}
}

func isMessageTable(m map[string]any) (ok bool) {
	if len(m) == 0 {
		return ok
	}
	for k := range m {
		if !pluralKeys[k] {
			return ok
		}
	}
	ok = true
	return ok
}

// IDs returns every message id defined by the default locale, sorted.
func (c *Catalog) IDs() (ids []string) {
	ids = make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Table returns a copy of the translation table for lang.  Ids missing from lang use the default locale's text.
func (c *Catalog) Table(lang Lang) (table TranslationTable) {
	own, ok := c.raw[lang]
	if !ok {
		own = c.raw[c.defaultLang]
	}
	fallback := c.raw[c.defaultLang]

	table = make(TranslationTable, len(c.ids))
	for _, id := range c.ids {
		if text, found := own[id]; found && text != "" {
			table[id] = text
			continue
		}
		table[id] = fallback[id]
	}
	return table
}

// Missing lists ids defined by the default locale that lang does not translate.
func (c *Catalog) Missing(lang Lang) (ids []string) {
	own := c.raw[lang]
	ids = make([]string, 0)
	for _, id := range c.ids {
		if own[id] == "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Translate renders messageID for lang, returning the id itself when no locale defines it.
func (c *Catalog) Translate(lang Lang, messageID string, data map[string]any) (text string) {
	text = c.localize(lang, &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	return text
}

// TranslatePlural renders a plural message, exposing count to the template as .Count.
func (c *Catalog) TranslatePlural(lang Lang, messageID string, count int, data map[string]any) (text string) {
	templateData := map[string]any{"Count": count}
	for k, v := range data {
		templateData[k] = v
	}

	text = c.localize(lang, &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
		PluralCount:  count,
	})
	return text
}

func (c *Catalog) localize(lang Lang, cfg *i18n.LocalizeConfig) (text string) {
	localizer := i18n.NewLocalizer(c.bundle, string(lang), string(c.defaultLang))

	text, err := localizer.Localize(cfg)
	if err != nil || text == "" {
		text = cfg.MessageID
	}
	return text
}
