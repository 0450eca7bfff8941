package export

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the locale index written next to the bundles.
const ManifestFile = "locales.json"

// Bundle is everything a page generator needs to render one locale.
type Bundle struct {
	Lang         i18n.Lang             `json:"lang"         yaml:"lang"`
	Name         string                `json:"name"         yaml:"name"`
	Home         string                `json:"home"         yaml:"home"`
	Profile      profile.View          `json:"profile"      yaml:"profile"`
	Summary      Summary               `json:"summary"      yaml:"summary"`
	Translations i18n.TranslationTable `json:"translations" yaml:"translations"`
	Alternates   []i18n.AlternateLink  `json:"alternates"   yaml:"alternates"`
}

// Summary holds the count phrases and footer line, already rendered.
type Summary struct {
	Positions      string `json:"positions"      yaml:"positions"`
	Certifications string `json:"certifications" yaml:"certifications"`
	Talks          string `json:"talks"          yaml:"talks"`
	Copyright      string `json:"copyright"      yaml:"copyright"`
}

// Manifest indexes an export directory.
type Manifest struct {
	Default  i18n.Lang       `json:"default"`
	BasePath string          `json:"basePath"`
	Format   profile.Format  `json:"format"`
	Locales  []ManifestEntry `json:"locales"`
}

// ManifestEntry points at one locale's bundle.
type ManifestEntry struct {
	Lang i18n.Lang `json:"lang"`
	Name string    `json:"name"`
	Home string    `json:"home"`
	File string    `json:"file"`
}

// Exporter writes per-locale bundles.
type Exporter struct {
	resolver *i18n.Resolver
	format   profile.Format
	logger   *slog.Logger
	now      func() time.Time
}

// NewExporter returns an exporter writing bundles in format.
func NewExporter(resolver *i18n.Resolver, format profile.Format, logger *slog.Logger) (exporter *Exporter, err error) {
	if resolver == nil {
		err = errors.New("exporter requires a resolver")
		return exporter, err
	}

	if format != profile.FormatJSON && format != profile.FormatYAML {
		err = errors.Errorf("unsupported export format %q", format)
		return exporter, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	exporter = &Exporter{
		resolver: resolver,
		format:   format,
		logger:   logger,
		now:      time.Now,
	}
	return exporter, err
}

// Build assembles the bundle for lang.  Unsupported tags build the default locale.
func (e *Exporter) Build(p *profile.Profile, lang i18n.Lang) (bundle Bundle, err error) {
	resolved, ok := e.resolver.Parse(string(lang))
	if !ok {
		resolved = e.resolver.Default()
	}
	lang = resolved

	var view profile.View
	view, err = p.Localize(lang)
	if err != nil {
		err = errors.Wrapf(err, "failed to localize profile for %s", lang)
		return bundle, err
	}

	bundle = Bundle{
		Lang:         lang,
		Name:         e.localeName(lang),
		Home:         e.resolver.LocalizedPath("/", lang),
		Profile:      view,
		Translations: e.resolver.Translations(lang),
		Alternates:   e.resolver.AlternateLinks("/"),
		Summary: Summary{
			Positions:      e.resolver.TranslatePlural(lang, "summary.positions", len(p.Experience), nil),
			Certifications: e.resolver.TranslatePlural(lang, "summary.certifications", len(p.Certifications), nil),
			Talks:          e.resolver.TranslatePlural(lang, "summary.talks", len(p.Speaking), nil),
			Copyright: e.resolver.Translate(lang, "footer.copyright", map[string]any{
				"Year": e.now().Year(),
				"Name": p.Name,
			}),
		},
	}
	return bundle, err
}

// Export writes one bundle per locale plus the manifest into outDir and returns the paths written.
func (e *Exporter) Export(ctx context.Context, p *profile.Profile, outDir string) (files []string, err error) {
	manifest := Manifest{
		Default:  e.resolver.Default(),
		BasePath: e.resolver.BasePath(),
		Format:   e.format,
	}

	for _, locale := range e.resolver.Locales() {
		err = ctx.Err()
		if err != nil {
			err = errors.Wrap(err, "export cancelled")
			return files, err
		}

		var bundle Bundle
		bundle, err = e.Build(p, locale.Lang)
		if err != nil {
			return files, err
		}

		var data []byte
		data, err = encode(bundle, e.format)
		if err != nil {
			return files, err
		}

		name := bundleFile(locale.Lang, e.format)
		path := filepath.Join(outDir, name)
		err = WriteFile(data, path)
		if err != nil {
			return files, err
		}

		e.logger.Debug("wrote bundle", "lang", locale.Lang, "path", path, "bytes", len(data))
		files = append(files, path)

		manifest.Locales = append(manifest.Locales, ManifestEntry{
			Lang: locale.Lang,
			Name: locale.Name,
			Home: bundle.Home,
			File: name,
		})
	}

	var data []byte
	data, err = encode(manifest, profile.FormatJSON)
	if err != nil {
		return files, err
	}

	path := filepath.Join(outDir, ManifestFile)
	err = WriteFile(data, path)
	if err != nil {
		return files, err
	}
	files = append(files, path)

	// Confirm everything landed
	err = validateFiles(files...)
	if err != nil {
		return files, err
	}

	e.logger.Info("export complete", "dir", outDir, "locales", len(manifest.Locales), "format", e.format)
	return files, err
}

// ReadManifest loads the manifest from an export directory.
func ReadManifest(outDir string) (manifest Manifest, err error) {
	path := filepath.Join(outDir, ManifestFile)

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read manifest: %s", path)
		return manifest, err
	}

	err = json.Unmarshal(data, &manifest)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse manifest: %s", path)
		return manifest, err
	}
	return manifest, err
}

// Clean removes the bundles a previous export recorded in outDir, then the manifest.
// Other files are left alone.  A directory without a manifest is already clean.
func Clean(outDir string) (removed []string, err error) {
	path := filepath.Join(outDir, ManifestFile)
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = nil
		return removed, err
	}

	var manifest Manifest
	manifest, err = ReadManifest(outDir)
	if err != nil {
		return removed, err
	}

	for _, entry := range manifest.Locales {
		// Entries must name a file directly inside outDir.
		if entry.File == "" || entry.File == "." || entry.File == ".." || filepath.Base(entry.File) != entry.File {
			err = errors.Errorf("manifest entry for %s has invalid file %q", entry.Lang, entry.File)
			return removed, err
		}

		bundlePath := filepath.Join(outDir, entry.File)
		if validateFiles(bundlePath) != nil {
			continue
		}
		removed = append(removed, bundlePath)
	}
	removed = append(removed, path)

	err = RemoveFiles(removed...)
	return removed, err
}

func bundleFile(lang i18n.Lang, format profile.Format) (name string) {
	name = string(lang) + "." + string(format)
	return name
}

func encode(v any, format profile.Format) (data []byte, err error) {
	switch format {
	case profile.FormatYAML:
		data, err = yaml.Marshal(v)
	case profile.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		err = errors.Errorf("unsupported export format %q", format)
		return data, err
	}

	if err != nil {
		err = errors.Wrapf(err, "failed to encode %s", format)
		return data, err
	}
	return data, err
}

func (e *Exporter) localeName(lang i18n.Lang) (name string) {
	for _, locale := range e.resolver.Locales() {
		if locale.Lang == lang {
			name = locale.Name
			return name
		}
	}
	return name
}
