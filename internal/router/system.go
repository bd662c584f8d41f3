package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deppfellow/lead-intake/internal/handler"
	"github.com/deppfellow/lead-intake/internal/server"
	"github.com/deppfellow/lead-intake/static"
)

// registerSystemRoutes registers endpoints that are not part of the lead
// flow: health, docs, static assets, metrics and the dev email preview.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and openapi.html, embedded in the binary.
	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if obs := s.Config.Observability; obs != nil && obs.Metrics.Enabled {
		r.GET(obs.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))
	}

	if s.Config.Observability == nil || !s.Config.Observability.IsProduction() {
		r.GET("/dev/emails/:template", h.Preview.ServeEmailPreview)
	}
}
