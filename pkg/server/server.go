package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/nikogura/portfolio/pkg/profile"
	"github.com/pkg/errors"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the localized content over a read-only JSON API.
type Server struct {
	resolver *i18n.Resolver
	logger   *slog.Logger
	views    map[i18n.Lang]profile.View
	engine   *gin.Engine
}

// New localizes p for every supported locale and builds the router.
func New(resolver *i18n.Resolver, p profile.Profile, logger *slog.Logger) (server *Server, err error) {
	if resolver == nil {
		err = errors.New("server requires a resolver")
		return server, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	views := make(map[i18n.Lang]profile.View)
	for _, locale := range resolver.Locales() {
		var view profile.View
		view, err = p.Localize(locale.Lang)
		if err != nil {
			err = errors.Wrapf(err, "failed to localize profile for %s", locale.Lang)
			return server, err
		}
		views[locale.Lang] = view
	}

	server = &Server{
		resolver: resolver,
		logger:   logger,
		views:    views,
	}
	server.engine = server.routes()

	return server, err
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() (handler http.Handler) {
	handler = s.engine
	return handler
}

func (s *Server) routes() (engine *gin.Engine) {
	engine = gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.GET("/healthz", s.health)
	engine.GET("/", s.languageMiddleware(), s.redirectRoot)

	api := engine.Group("/api")
	api.GET("/locales", s.locales)
	api.GET("/route", s.route)

	localized := api.Group("/:lang", s.languageMiddleware())
	localized.GET("/profile", s.profile)
	localized.GET("/translations", s.translations)

	return engine
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) (err error) {
	var lc net.ListenConfig
	var ln net.Listener
	ln, err = lc.Listen(ctx, "tcp", addr)
	if err != nil {
		err = errors.Wrapf(err, "failed to listen on %s", addr)
		return err
	}

	err = s.Serve(ctx, ln)
	return err
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) (err error) {
	httpServer := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving content API", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
			return err
		}
		err = errors.Wrap(err, "server failed")
		return err

	case <-ctx.Done():
	}

	s.logger.Info("shutting down content API")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err = httpServer.Shutdown(shutdownCtx)
	if err != nil {
		err = errors.Wrap(err, "graceful shutdown failed")
		return err
	}

	return err
}
