package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deppfellow/lead-intake/internal/config"
)

// ErrNoRecipients is returned when every recipient was empty.
var ErrNoRecipients = errors.New("no recipients")

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Result is the provider's answer to a successful send.
type Result struct {
	Status int
	Body   string
}

// DispatchError describes a failed send. Status is 0 when the request never
// got a response (DNS, connection refused, context cancelled).
type DispatchError struct {
	Status int
	Body   string
	Err    error
}

func (e *DispatchError) Error() string {
	if e.Status != 0 && !isSuccess(e.Status) {
		return fmt.Sprintf("email provider returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("email provider request failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Dispatcher sends a message through a transactional-email provider.
//
// Send makes exactly one outbound call and never retries. A non-2xx status
// or a transport failure is returned as *DispatchError.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) (*Result, error)
	Provider() string
}

// NormalizeRecipients trims addresses and drops empty ones.
func NormalizeRecipients(recipients ...string) []string {
	out := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// NewDispatcher picks the provider from config.
//
// It returns nil when no API key is configured; callers treat that as
// degraded mode and skip sending.
func NewDispatcher(cfg config.EmailConfig, logger *zerolog.Logger) Dispatcher {
	if !cfg.Enabled() {
		return nil
	}

	switch cfg.Provider {
	case config.EmailProviderSendGrid:
		return NewSendGridClient(cfg, logger)
	default:
		return NewClient(cfg, logger)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
