package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/nikogura/portfolio/pkg/server"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the localized content as a JSON API",
	Long: `Run a read-only preview API over the localized content until interrupted.

Routes:
  GET /                         redirect to the visitor's locale
  GET /healthz                  liveness
  GET /api/locales              locale set, default and base path
  GET /api/:lang/profile        localized profile
  GET /api/:lang/translations   translation table
  GET /api/route?path=...       a path in every locale

Example:
  portfolio serve
  portfolio serve --addr 127.0.0.1:3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var env environment
	env, err = setup()
	if err != nil {
		return err
	}

	if !getVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := serveAddr
	if addr == "" {
		addr = env.cfg.Server.Addr
	}

	var p profile.Profile
	p, err = env.loadProfile()
	if err != nil {
		return err
	}

	var srv *server.Server
	srv, err = server.New(env.resolver, p, env.logger)
	if err != nil {
		return err
	}

	err = srv.Run(ctx, addr)
	return err
}
