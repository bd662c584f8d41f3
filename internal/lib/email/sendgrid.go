package email

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/deppfellow/lead-intake/internal/config"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// SendGridClient sends emails via SendGrid's v3 mail API.
type SendGridClient struct {
	apiKey string
	host   string
	logger *zerolog.Logger
}

// NewSendGridClient creates a SendGrid dispatcher. BaseURL in config
// replaces the API host.
func NewSendGridClient(cfg config.EmailConfig, logger *zerolog.Logger) *SendGridClient {
	host := sendGridHost
	if cfg.BaseURL != "" {
		host = strings.TrimRight(cfg.BaseURL, "/")
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &SendGridClient{
		apiKey: cfg.APIKey,
		host:   host,
		logger: logger,
	}
}

func (s *SendGridClient) Provider() string {
	return config.EmailProviderSendGrid
}

// Send posts one message with every recipient in a single personalization.
func (s *SendGridClient) Send(ctx context.Context, msg Message) (*Result, error) {
	to := NormalizeRecipients(msg.To...)
	if len(to) == 0 {
		return nil, &DispatchError{Err: ErrNoRecipients}
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(parseAddress(msg.From))
	message.Subject = msg.Subject

	personalization := sgmail.NewPersonalization()
	for _, addr := range to {
		personalization.AddTos(parseAddress(addr))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/html", msg.HTML))

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = "POST"
	request.Body = sgmail.GetRequestBody(message)

	start := time.Now()
	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		dispatchErr := &DispatchError{Err: err}
		s.logger.Error().
			Err(dispatchErr).
			Str("provider", s.Provider()).
			Dur("duration", time.Since(start)).
			Msg("failed to send email")
		return nil, dispatchErr
	}

	if !isSuccess(response.StatusCode) {
		dispatchErr := &DispatchError{Status: response.StatusCode, Body: response.Body}
		s.logger.Error().
			Err(dispatchErr).
			Str("provider", s.Provider()).
			Int("recipients", len(to)).
			Dur("duration", time.Since(start)).
			Msg("failed to send email")
		return nil, dispatchErr
	}

	s.logger.Info().
		Str("provider", s.Provider()).
		Int("status", response.StatusCode).
		Int("recipients", len(to)).
		Dur("duration", time.Since(start)).
		Msg("email sent")

	return &Result{Status: response.StatusCode, Body: response.Body}, nil
}

// parseAddress accepts both "Name <addr>" and bare addresses.
func parseAddress(addr string) *sgmail.Email {
	if parsed, err := sgmail.ParseEmail(addr); err == nil {
		return parsed
	}
	return sgmail.NewEmail("", addr)
}
