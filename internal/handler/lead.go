package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lead-intake/internal/middleware"
	"github.com/deppfellow/lead-intake/internal/model"
	"github.com/deppfellow/lead-intake/internal/server"
	"github.com/deppfellow/lead-intake/internal/service"
)

// LeadHandler serves the quote-request form endpoint.
type LeadHandler struct {
	Handler
	leadService *service.LeadService
}

func NewLeadHandler(s *server.Server, leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{
		Handler:     NewHandler(s),
		leadService: leadService,
	}
}

// SubmitQuoteLead is the echo handler for POST /api/send-quote-lead.
func (h *LeadHandler) SubmitQuoteLead() echo.HandlerFunc {
	return Handle(h.Handler, h.submit, http.StatusOK, func() *model.LeadPayload {
		return &model.LeadPayload{}
	})
}

func (h *LeadHandler) submit(c echo.Context, payload *model.LeadPayload) (*model.LeadResponse, error) {
	logger := middleware.GetLogger(c)

	result := h.leadService.Submit(c.Request().Context(), logger, payload)
	resp := model.NewLeadResponse(result, time.Now())

	return &resp, nil
}
