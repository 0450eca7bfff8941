package cmd

import (
	"fmt"
	"strings"

	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the profile, translations and locale config",
	Long: `Load and validate everything the site is built from:

- the locale configuration (tags, default locale, base path)
- the translation catalog (every message defined for every locale)
- the profile (bilingual fields complete, dates well formed)

Exits non-zero when anything is wrong.

Example:
  portfolio validate
  portfolio validate --profile https://example.com/profile.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = setup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Locales: %s (default %s)\n", strings.Join(langStrings(env), ", "), env.resolver.Default())

	// Every locale must define every message
	catalog := env.resolver.Catalog()
	var incomplete []string
	for _, lang := range env.langs() {
		missing := catalog.Missing(lang)
		if len(missing) == 0 {
			continue
		}
		env.logger.Error("missing translations", "lang", lang, "ids", missing)
		incomplete = append(incomplete, fmt.Sprintf("%s (%d)", lang, len(missing)))
	}

	if len(incomplete) > 0 {
		err = errors.Errorf("translations incomplete: %s", strings.Join(incomplete, ", "))
		return err
	}
	fmt.Fprintf(out, "✓ Translations: %d messages\n", len(catalog.IDs()))

	// Profile, then every locale's view
	var p profile.Profile
	p, err = env.loadProfile()
	if err != nil {
		return err
	}

	for _, lang := range env.langs() {
		_, err = p.Localize(lang)
		if err != nil {
			err = errors.Wrapf(err, "profile cannot be localized for %s", lang)
			return err
		}
	}

	fmt.Fprintf(out, "✓ Profile: %s (%d positions, %d certifications, %d talks)\n",
		p.Name, len(p.Experience), len(p.Certifications), len(p.Speaking))

	return err
}

func langStrings(env environment) (tags []string) {
	for _, lang := range env.langs() {
		tags = append(tags, lang.String())
	}
	return tags
}
