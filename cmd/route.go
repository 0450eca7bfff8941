package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var routeCmd = &cobra.Command{
	Use:   "route <path>",
	Short: "Show how a path resolves in every locale",
	Long: `Print the locale detected from a URL path and the path's address in every
supported locale, honoring the configured base path.

Example:
  portfolio route /zh-tw/speaking
  portfolio route "/personal-sites/about?tab=1"`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = setup()
	if err != nil {
		return err
	}

	path := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Path:     %s\n", path)
	fmt.Fprintf(out, "Locale:   %s\n", env.resolver.LanguageFromURL(path))
	fmt.Fprintf(out, "Base:     %q\n", env.resolver.BasePath())
	fmt.Fprintln(out, "Alternates:")
	for _, link := range env.resolver.AlternateLinks(path) {
		fmt.Fprintf(out, "  %-8s %s\n", link.Lang, link.Href)
	}

	return err
}
