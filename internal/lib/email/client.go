// Package email sends the lead notification email.
//
// Resend (resend-go) is the default provider; SendGrid is available
// behind the same Dispatcher interface. Bodies are rendered from
// templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/lead-intake/internal/config"
)

// Client wraps the Resend client and a logger.
type Client struct {
	// client is the provider client used to send emails via API.
	client *resend.Client

	logger *zerolog.Logger
}

// NewClient creates a Resend-backed Client.
//
// The underlying http.Client records each response so failures can carry
// the provider's status and body.
func NewClient(cfg config.EmailConfig, logger *zerolog.Logger) *Client {
	httpClient := &http.Client{
		Transport: &captureTransport{base: http.DefaultTransport},
	}

	client := resend.NewCustomClient(httpClient, cfg.APIKey)

	if cfg.BaseURL != "" {
		// resend resolves "emails" relative to BaseURL, so it needs the slash.
		if base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/"); err == nil {
			client.BaseURL = base
		}
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		client: client,
		logger: logger,
	}
}

// Provider names this dispatcher in logs and metrics.
func (c *Client) Provider() string {
	return config.EmailProviderResend
}

// Send posts the message to Resend's email endpoint.
func (c *Client) Send(ctx context.Context, msg Message) (*Result, error) {
	to := NormalizeRecipients(msg.To...)
	if len(to) == 0 {
		return nil, &DispatchError{Err: ErrNoRecipients}
	}

	capture := &capturedResponse{}
	ctx = context.WithValue(ctx, captureKey{}, capture)

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      to,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	start := time.Now()
	sent, err := c.client.Emails.SendWithContext(ctx, params)

	// The status decides the outcome. resend-go fails to decode 2xx bodies that
	// are empty or not JSON, and those sends were still accepted.
	if !isSuccess(capture.status) {
		dispatchErr := &DispatchError{
			Status: capture.status,
			Body:   capture.body,
			Err:    err,
		}

		c.logger.Error().
			Err(dispatchErr).
			Str("provider", c.Provider()).
			Int("recipients", len(to)).
			Dur("duration", time.Since(start)).
			Msg("failed to send email")

		return nil, dispatchErr
	}

	event := c.logger.Info().
		Str("provider", c.Provider()).
		Int("status", capture.status).
		Int("recipients", len(to)).
		Dur("duration", time.Since(start))
	if sent != nil {
		event = event.Str("email_id", sent.Id)
	}
	event.Msg("email sent")

	return &Result{Status: capture.status, Body: capture.body}, nil
}

type captureKey struct{}

// capturedResponse holds the raw provider response of one Send call.
type capturedResponse struct {
	status int
	body   string
}

// captureTransport copies status and body into the capturedResponse found in
// the request context, then hands the response on untouched.
type captureTransport struct {
	base http.RoundTripper
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	capture, ok := req.Context().Value(captureKey{}).(*capturedResponse)
	if !ok {
		return resp, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	capture.status = resp.StatusCode
	capture.body = string(body)

	if readErr != nil {
		return nil, readErr
	}

	return resp, nil
}
