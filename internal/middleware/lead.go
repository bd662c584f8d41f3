package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/lead-intake/internal/errs"
	"github.com/deppfellow/lead-intake/internal/metrics"
	"github.com/deppfellow/lead-intake/internal/server"
)

// LeadMiddleware holds route middleware for the lead endpoint.
type LeadMiddleware struct {
	server *server.Server
}

func NewLeadMiddleware(s *server.Server) *LeadMiddleware {
	return &LeadMiddleware{server: s}
}

// RequirePOST rejects every other method with a 405 before the body is read.
func (lm *LeadMiddleware) RequirePOST(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodPost {
			c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
			return errs.NewMethodNotAllowedError()
		}
		return next(c)
	}
}

// ObserveRejections counts leads turned away by binding or validation.
// Accepted leads are counted by the lead service.
func (lm *LeadMiddleware) ObserveRejections(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}

		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.Code {
			case errs.CodeInvalidJSON:
				lm.server.Metrics.ObserveLead(metrics.OutcomeInvalidJSON)
			case errs.CodeInvalidFieldType:
				lm.server.Metrics.ObserveLead(metrics.OutcomeInvalidField)
			case errs.CodeMissingFields:
				lm.server.Metrics.ObserveLead(metrics.OutcomeMissingFields)
			}
		}

		return err
	}
}
