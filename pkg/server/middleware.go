package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/portfolio/pkg/i18n"
)

const (
	langKey      = "lang"
	supportedKey = "langSupported"
)

// languageMiddleware resolves the request locale.  A :lang path parameter wins;
// requests without one are negotiated from Accept-Language.  Unknown tags fall
// back to the default locale and are flagged so handlers can reject them.
func (s *Server) languageMiddleware() (handler gin.HandlerFunc) {
	handler = func(c *gin.Context) {
		lang := s.resolver.Default()
		supported := true

		tag := c.Param("lang")
		if tag != "" {
			resolved, ok := s.resolver.Parse(tag)
			if ok {
				lang = resolved
			}
			supported = ok
		} else {
			lang = s.resolver.Negotiate(c.GetHeader("Accept-Language"))
		}

		c.Set(langKey, lang)
		c.Set(supportedKey, supported)
		c.Next()
	}
	return handler
}

// LangFrom returns the locale stored by the language middleware.
func LangFrom(c *gin.Context) (lang i18n.Lang, supported bool) {
	value, ok := c.Get(langKey)
	if !ok {
		return lang, supported
	}

	lang, _ = value.(i18n.Lang)
	supported = c.GetBool(supportedKey)
	return lang, supported
}

func (s *Server) requestLogger() (handler gin.HandlerFunc) {
	handler = func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}

		lang, _ := LangFrom(c)
		s.logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"lang", lang,
			"duration", time.Since(start),
		)
	}
	return handler
}
