package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/nikogura/portfolio/pkg/logging"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestExporter(t *testing.T, basePath string, format profile.Format) (exporter *Exporter) {
	t.Helper()

	cfg := i18n.DefaultConfig()
	cfg.BasePath = basePath

	resolver, err := i18n.NewResolver(cfg, nil)
	require.NoError(t, err)

	exporter, err = NewExporter(resolver, format, logging.Discard())
	require.NoError(t, err)

	exporter.now = func() time.Time {
		return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return exporter
}

func TestNewExporterErrors(t *testing.T) {
	_, err := NewExporter(nil, profile.FormatJSON, nil)
	assert.Error(t, err)

	resolver, err := i18n.NewResolver(i18n.DefaultConfig(), nil)
	require.NoError(t, err)

	_, err = NewExporter(resolver, profile.Format("toml"), nil)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	e := newTestExporter(t, "/personal-sites", profile.FormatJSON)
	p := profile.Default()

	bundle, err := e.Build(&p, i18n.TraditionalChinese)
	require.NoError(t, err)

	assert.Equal(t, i18n.TraditionalChinese, bundle.Lang)
	assert.Equal(t, "/personal-sites/zh-tw/", bundle.Home)
	assert.Equal(t, "資深資安工程師", bundle.Profile.Experience[0].Position)
	assert.Equal(t, "首頁", bundle.Translations["nav.home"])
	assert.Equal(t, "3 場演講", bundle.Summary.Talks)
	assert.Equal(t, "© 2024 Tygrus Tsai. 版權所有。", bundle.Summary.Copyright)

	require.Len(t, bundle.Alternates, 2)
	assert.Equal(t, "/personal-sites/", bundle.Alternates[0].Href)
	assert.Equal(t, "/personal-sites/zh-tw/", bundle.Alternates[1].Href)
}

func TestBuildEnglishPlurals(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatJSON)
	p := profile.Default()
	p.Speaking = p.Speaking[:1]

	bundle, err := e.Build(&p, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "3 positions", bundle.Summary.Positions)
	assert.Equal(t, "5 certifications", bundle.Summary.Certifications)
	assert.Equal(t, "1 talk", bundle.Summary.Talks)
	assert.Equal(t, "© 2024 Tygrus Tsai. All rights reserved.", bundle.Summary.Copyright)
}

func TestBuildUnknownLangUsesDefault(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatJSON)
	p := profile.Default()

	bundle, err := e.Build(&p, i18n.Lang("fr"))
	require.NoError(t, err)
	assert.Equal(t, i18n.English, bundle.Lang)
	assert.Equal(t, "/", bundle.Home)

	// Tags are matched case-insensitively.
	bundle, err = e.Build(&p, i18n.Lang("zh-TW"))
	require.NoError(t, err)
	assert.Equal(t, i18n.TraditionalChinese, bundle.Lang)
}

func TestBuildMalformedDate(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatJSON)
	p := profile.Default()
	p.Experience[0].StartDate = "2023/08"

	_, err := e.Build(&p, i18n.English)
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	e := newTestExporter(t, "/personal-sites", profile.FormatJSON)
	p := profile.Default()
	dir := filepath.Join(t.TempDir(), "content")

	files, err := e.Export(context.Background(), &p, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "en.json"),
		filepath.Join(dir, "zh-tw.json"),
		filepath.Join(dir, ManifestFile),
	}, files)

	data, err := os.ReadFile(filepath.Join(dir, "zh-tw.json"))
	require.NoError(t, err)

	var bundle Bundle
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.Equal(t, i18n.TraditionalChinese, bundle.Lang)
	assert.Equal(t, "繁體中文", bundle.Name)
	assert.Equal(t, "至今", bundle.Translations["label.present"])

	manifest, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, i18n.English, manifest.Default)
	assert.Equal(t, "/personal-sites", manifest.BasePath)
	assert.Equal(t, profile.FormatJSON, manifest.Format)
	require.Len(t, manifest.Locales, 2)
	assert.Equal(t, "zh-tw.json", manifest.Locales[1].File)
	assert.Equal(t, "/personal-sites/zh-tw/", manifest.Locales[1].Home)
}

func TestExportYAML(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatYAML)
	p := profile.Default()
	dir := t.TempDir()

	_, err := e.Export(context.Background(), &p, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "en.yaml"))
	require.NoError(t, err)

	var bundle Bundle
	require.NoError(t, yaml.Unmarshal(data, &bundle))
	assert.Equal(t, "Tygrus Tsai", bundle.Profile.Name)
	assert.Equal(t, "Present", bundle.Translations["label.present"])

	// The manifest is always JSON.
	_, err = os.Stat(filepath.Join(dir, ManifestFile))
	assert.NoError(t, err)
}

func TestExportCancelled(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatJSON)
	p := profile.Default()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := e.Export(ctx, &p, t.TempDir())
	assert.Error(t, err)
	assert.Empty(t, files)
}

func TestClean(t *testing.T) {
	e := newTestExporter(t, "", profile.FormatJSON)
	p := profile.Default()
	dir := t.TempDir()

	_, err := e.Export(context.Background(), &p, dir)
	require.NoError(t, err)

	// Files the export did not write survive.
	keep := filepath.Join(dir, "CNAME")
	require.NoError(t, os.WriteFile(keep, []byte("example.com"), 0600))

	// A bundle deleted by hand is skipped.
	require.NoError(t, os.Remove(filepath.Join(dir, "en.json")))

	removed, err := Clean(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "zh-tw.json"),
		filepath.Join(dir, ManifestFile),
	}, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CNAME", entries[0].Name())
}

func TestCleanWithoutManifest(t *testing.T) {
	removed, err := Clean(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleanRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"default":"en","locales":[{"lang":"en","file":"../en.json"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0600))

	_, err := Clean(dir)
	assert.Error(t, err)
}
