package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/lead-intake/internal/config"
	"github.com/deppfellow/lead-intake/internal/lib/email"
	"github.com/deppfellow/lead-intake/internal/lib/utils"
	"github.com/deppfellow/lead-intake/internal/metrics"
	"github.com/deppfellow/lead-intake/internal/model"
)

const providerNone = "none"

// LeadService accepts validated leads and sends the notification email.
type LeadService struct {
	cfg        config.EmailConfig
	dispatcher email.Dispatcher
	metrics    *metrics.LeadMetrics
}

// NewLeadService wires the service. A nil dispatcher means degraded mode.
func NewLeadService(cfg config.EmailConfig, dispatcher email.Dispatcher, m *metrics.LeadMetrics) *LeadService {
	return &LeadService{
		cfg:        cfg,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// Submit logs the lead and attempts the notification. A dispatch failure is
// reported in the result, never as an error: the lead is accepted either way.
func (s *LeadService) Submit(ctx context.Context, logger *zerolog.Logger, payload *model.LeadPayload) *model.LeadResult {
	summary := payload.Summary()

	logLead(logger, summary, payload.Raw())
	s.metrics.ObserveLead(metrics.OutcomeAccepted)

	result := &model.LeadResult{Summary: summary}

	if s.dispatcher == nil {
		logger.Debug().Msg("email dispatch skipped, no API key configured")
		s.metrics.ObserveDispatch(providerNone, metrics.DispatchSkipped, 0)
		return result
	}

	provider := s.dispatcher.Provider()

	msg, err := email.NewLeadNotification(s.cfg.FromAddress, s.cfg.AdminAddress, summary)
	if err != nil {
		logger.Error().Stack().Err(err).Msg("failed to build lead notification")
		s.metrics.ObserveDispatch(provider, metrics.DispatchFailed, 0)
		result.EmailErr = err
		return result
	}

	start := time.Now()
	sent, err := s.dispatcher.Send(ctx, msg)
	took := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("provider", provider).
			Strs("recipients", msg.To).
			Dur("duration", took).
			Msg("lead notification failed")
		s.metrics.ObserveDispatch(provider, metrics.DispatchFailed, took)
		result.EmailErr = err
		return result
	}

	logger.Info().
		Str("provider", provider).
		Int("status", sent.Status).
		Strs("recipients", msg.To).
		Dur("duration", took).
		Msg("lead notification sent")
	s.metrics.ObserveDispatch(provider, metrics.DispatchSent, took)
	result.EmailSent = true

	return result
}

// logLead writes the audit line for an accepted lead: every recognized field
// (defaults included) plus the raw body as received.
func logLead(logger *zerolog.Logger, summary model.LeadSummary, raw map[string]any) {
	logger.Info().
		Str("lead_name", summary.Lead.Name).
		Str("company_name", summary.Lead.Company).
		Str("lead_email", summary.Lead.Email).
		Str("product", summary.Product).
		Interface("config", summary.Config).
		Str("config_id", summary.ConfigID).
		Float64("price", summary.Price).
		Str("notes", summary.Notes).
		Str("source_url", summary.SourceURL).
		Str("payload", utils.PrettyJSON(raw)).
		Msg("lead received")
}
