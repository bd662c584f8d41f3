package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lead-intake/internal/errs"
	"github.com/deppfellow/lead-intake/internal/lib/email"
	"github.com/deppfellow/lead-intake/internal/server"
)

// PreviewHandler renders email templates with sample data. The router only
// mounts it outside production.
type PreviewHandler struct {
	Handler
}

func NewPreviewHandler(s *server.Server) *PreviewHandler {
	return &PreviewHandler{Handler: NewHandler(s)}
}

// ServeEmailPreview serves GET /dev/emails/:template.
func (h *PreviewHandler) ServeEmailPreview(c echo.Context) error {
	name := email.Template(c.Param("template"))
	if _, ok := email.PreviewData[name]; !ok {
		return errs.NewNotFoundError(fmt.Sprintf("Unknown email template %q", name))
	}

	html, err := email.Preview(name)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, html)
}
