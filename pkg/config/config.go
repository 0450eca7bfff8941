package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	ProfileLocation string       `json:"profile_location,omitempty" env:"PROFILE"`
	LogLevel        string       `json:"log_level,omitempty"        env:"LOG_LEVEL"`
	Site            SiteConfig   `json:"site"                       envPrefix:"SITE_"`
	I18n            I18nConfig   `json:"i18n"`
	Export          ExportConfig `json:"export"                     envPrefix:"EXPORT_"`
	Server          ServerConfig `json:"server"                     envPrefix:"SERVER_"`
}

// SiteConfig describes where the site is deployed.
type SiteConfig struct {
	URL      string `json:"url,omitempty"       env:"URL"`
	BasePath string `json:"base_path,omitempty" env:"BASE_PATH"`
}

// I18nConfig holds the locale set and optional message directory.
type I18nConfig struct {
	DefaultLocale string        `json:"default_locale,omitempty"`
	Locales       []i18n.Locale `json:"locales,omitempty"`
	MessagesDir   string        `json:"messages_dir,omitempty"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	OutputDir string `json:"output_dir,omitempty" env:"OUTPUT_DIR"`
	Format    string `json:"format,omitempty"     env:"FORMAT"`
}

// ServerConfig holds defaults for the preview server.
type ServerConfig struct {
	Addr string `json:"addr,omitempty" env:"ADDR"`
}

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PORTFOLIO_"

	defaultOutputDir = "./content"
	defaultFormat    = "json"
	defaultAddr      = ":8080"
	defaultLogLevel  = "info"
	dotEnvFile       = ".env"
)

// DefaultPath returns $HOME/.portfolio/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".portfolio", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file at the default location is not an error; defaults apply.
func Load(configPath string) (cfg Config, err error) {
	// Pick up a local .env if there is one
	err = loadDotEnv(dotEnvFile)
	if err != nil {
		return cfg, err
	}

	// Determine config file location
	path := configPath
	explicit := path != ""
	if !explicit {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'portfolio init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	err = env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		err = errors.Wrap(err, "failed to parse environment overrides")
		return cfg, err
	}

	// Validate and fill defaults
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// loadDotEnv loads path into the environment.  A missing file is fine; a malformed one is not.
func loadDotEnv(path string) (err error) {
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = nil
		return err
	}

	err = godotenv.Load(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return err
	}
	return err
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = string(i18n.English)
	}

	if len(c.I18n.Locales) == 0 {
		c.I18n.Locales = i18n.DefaultConfig().Locales
	}

	err = c.LocaleConfig().Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid i18n settings")
		return err
	}

	if c.I18n.MessagesDir != "" {
		info, statErr := os.Stat(c.I18n.MessagesDir)
		if statErr != nil || !info.IsDir() {
			err = errors.Errorf("i18n.messages_dir not found: %s", c.I18n.MessagesDir)
			return err
		}
	}

	if c.Site.URL != "" && !strings.HasPrefix(c.Site.URL, "http://") && !strings.HasPrefix(c.Site.URL, "https://") {
		err = errors.Errorf("site.url must be an http(s) URL: %s", c.Site.URL)
		return err
	}

	if c.Export.OutputDir == "" {
		c.Export.OutputDir = defaultOutputDir
	}

	if c.Export.Format == "" {
		c.Export.Format = defaultFormat
	}

	if c.Export.Format != "json" && c.Export.Format != "yaml" {
		err = errors.Errorf("export.format must be 'json' or 'yaml', got '%s'", c.Export.Format)
		return err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	return err
}

// LocaleConfig converts the i18n settings into resolver configuration.
func (c *Config) LocaleConfig() (cfg i18n.Config) {
	cfg = i18n.Config{
		BasePath:    c.Site.BasePath,
		DefaultLang: i18n.Lang(c.I18n.DefaultLocale),
		Locales:     c.I18n.Locales,
	}.Normalized()
	return cfg
}

// NewResolver builds the locale resolver described by the configuration.
func (c *Config) NewResolver() (resolver *i18n.Resolver, err error) {
	localeCfg := c.LocaleConfig()

	var catalog *i18n.Catalog
	if c.I18n.MessagesDir != "" {
		catalog, err = i18n.NewCatalogFromDir(c.I18n.MessagesDir, localeCfg.DefaultLang, localeCfg.Langs()...)
		if err != nil {
			return resolver, err
		}
	}

	resolver, err = i18n.NewResolver(localeCfg, catalog)
	return resolver, err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	localeCfg := i18n.DefaultConfig()
	defaultConfig := Config{
		LogLevel: defaultLogLevel,
		Site: SiteConfig{
			URL:      "https://example.github.io",
			BasePath: "",
		},
		I18n: I18nConfig{
			DefaultLocale: string(localeCfg.DefaultLang),
			Locales:       localeCfg.Locales,
		},
		Export: ExportConfig{
			OutputDir: defaultOutputDir,
			Format:    defaultFormat,
		},
		Server: ServerConfig{
			Addr: defaultAddr,
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
