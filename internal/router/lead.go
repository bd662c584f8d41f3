package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lead-intake/internal/handler"
	"github.com/deppfellow/lead-intake/internal/middleware"
)

// LeadPaths are the URLs the quote form may post to. The second keeps
// forms built against the old Netlify function working.
var LeadPaths = []string{
	"/api/send-quote-lead",
	"/.netlify/functions/send-quote-lead",
}

// registerLeadRoutes mounts the lead endpoint for every method so that
// anything but POST gets the JSON 405 instead of echo's default.
func registerLeadRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	submit := h.Lead.SubmitQuoteLead()

	for _, path := range LeadPaths {
		r.Any(path, submit, m.Lead.RequirePOST, m.Lead.ObserveRejections)
	}
}
