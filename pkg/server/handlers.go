package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/portfolio/pkg/i18n"
)

// LocalesResponse describes the configured locale set.
type LocalesResponse struct {
	Default  i18n.Lang     `json:"default"`
	BasePath string        `json:"basePath"`
	Locales  []i18n.Locale `json:"locales"`
}

// RouteResponse describes one path across every locale.
type RouteResponse struct {
	Path       string               `json:"path"`
	Lang       i18n.Lang            `json:"lang"`
	Alternates []i18n.AlternateLink `json:"alternates"`
	Localized  map[i18n.Lang]string `json:"localized"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) redirectRoot(c *gin.Context) {
	lang, _ := LangFrom(c)
	c.Redirect(http.StatusFound, s.resolver.LocalizedPath("/", lang))
}

func (s *Server) locales(c *gin.Context) {
	c.JSON(http.StatusOK, LocalesResponse{
		Default:  s.resolver.Default(),
		BasePath: s.resolver.BasePath(),
		Locales:  s.resolver.Locales(),
	})
}

func (s *Server) profile(c *gin.Context) {
	lang, supported := LangFrom(c)
	if !supported {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported locale: " + c.Param("lang")})
		return
	}

	c.JSON(http.StatusOK, s.views[lang])
}

func (s *Server) translations(c *gin.Context) {
	lang, _ := LangFrom(c)
	c.JSON(http.StatusOK, s.resolver.Translations(lang))
}

func (s *Server) route(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	alternates := s.resolver.AlternateLinks(path)
	localized := make(map[i18n.Lang]string, len(alternates))
	for _, link := range alternates {
		localized[link.Lang] = link.Href
	}

	c.JSON(http.StatusOK, RouteResponse{
		Path:       path,
		Lang:       s.resolver.LanguageFromURL(path),
		Alternates: alternates,
		Localized:  localized,
	})
}
