package cmd

import (
	"log/slog"
	"os"

	"github.com/nikogura/portfolio/pkg/config"
	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/nikogura/portfolio/pkg/logging"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var profileSource string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage a bilingual personal portfolio site",
	Long: `portfolio validates the bilingual profile behind a personal site, resolves
locale-aware URLs, and exports per-locale content bundles for the page generator.

The profile is read from --profile (file or URL), the config's profile_location,
or the built-in profile when neither is set.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.portfolio/config.json)")
	rootCmd.PersistentFlags().StringVar(&profileSource, "profile", "", "profile file or URL (overrides profile_location)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// getProfileSource returns the profile flag value.
func getProfileSource() (result string) {
	result = profileSource
	return result
}

// environment is what every command needs before doing its work.
type environment struct {
	cfg      config.Config
	logger   *slog.Logger
	resolver *i18n.Resolver
}

// setup loads config, builds the logger, and constructs the locale resolver.
func setup() (env environment, err error) {
	env.cfg, err = config.Load(getConfigFile())
	if err != nil {
		return env, err
	}

	level := slog.LevelDebug
	if !getVerbose() {
		level, err = logging.ParseLevel(env.cfg.LogLevel)
		if err != nil {
			err = errors.Wrap(err, "invalid log_level")
			return env, err
		}
	}

	env.logger = logging.New(os.Stderr, level)
	slog.SetDefault(env.logger)

	env.resolver, err = env.cfg.NewResolver()
	if err != nil {
		err = errors.Wrap(err, "failed to build locale resolver")
		return env, err
	}

	env.logger.Debug("configuration loaded",
		"default_locale", env.resolver.Default(),
		"base_path", env.resolver.BasePath(),
		"locales", len(env.resolver.Locales()),
	)
	return env, err
}

// loadProfile reads the profile named by --profile or the config, or returns the built-in one.
func (env environment) loadProfile() (p profile.Profile, err error) {
	source := getProfileSource()
	if source == "" {
		source = env.cfg.ProfileLocation
	}

	langs := env.langs()

	if source == "" {
		env.logger.Debug("using built-in profile")
		p = profile.Default()
		err = p.Validate(langs)
		return p, err
	}

	env.logger.Debug("loading profile", "source", source)
	p, err = profile.Load(source, langs...)
	if err != nil {
		err = errors.Wrapf(err, "failed to load profile from %s", source)
		return p, err
	}

	return p, err
}

// langs returns the resolver's normalized locale tags.
func (env environment) langs() (langs []i18n.Lang) {
	for _, locale := range env.resolver.Locales() {
		langs = append(langs, locale.Lang)
	}
	return langs
}
