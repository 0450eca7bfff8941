package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/portfolio/pkg/export"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var exportClean bool

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write per-locale content bundles",
	Long: `Export one content bundle per locale for the page generator.

Each bundle holds the localized profile with formatted dates, the translation
table, count summaries, and the alternate-language links for the home page.
A locales.json manifest indexes the bundles.

Example:
  portfolio export
  portfolio export --output-dir ./site/data --format yaml
  portfolio export --clean`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Output directory (default from config)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Bundle format: json or yaml (default from config)")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "Remove bundles from a previous export first")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	var env environment
	env, err = setup()
	if err != nil {
		return err
	}

	outDir := exportOutputDir
	if outDir == "" {
		outDir = env.cfg.Export.OutputDir
	}

	format := profile.Format(exportFormat)
	if format == "" {
		format = profile.Format(env.cfg.Export.Format)
	}

	var p profile.Profile
	p, err = env.loadProfile()
	if err != nil {
		return err
	}

	var exporter *export.Exporter
	exporter, err = export.NewExporter(env.resolver, format, env.logger)
	if err != nil {
		return err
	}

	if exportClean {
		var removed []string
		removed, err = export.Clean(outDir)
		if err != nil {
			return err
		}
		env.logger.Info("cleaned previous export", "dir", outDir, "files", len(removed))
	}

	var files []string
	files, err = exporter.Export(ctx, &p, outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Exported %d files to %s\n", len(files), outDir)
	if getVerbose() {
		for _, f := range files {
			fmt.Fprintf(out, "  %s\n", f)
		}
	}

	return err
}
