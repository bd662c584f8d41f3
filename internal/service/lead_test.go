package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/lead-intake/internal/config"
	"github.com/deppfellow/lead-intake/internal/lib/email"
	"github.com/deppfellow/lead-intake/internal/metrics"
	"github.com/deppfellow/lead-intake/internal/model"
)

type fakeDispatcher struct {
	err   error
	calls []email.Message
}

func (f *fakeDispatcher) Send(_ context.Context, msg email.Message) (*email.Result, error) {
	f.calls = append(f.calls, msg)
	if f.err != nil {
		return nil, f.err
	}
	return &email.Result{Status: 200, Body: `{"id":"1"}`}, nil
}

func (f *fakeDispatcher) Provider() string { return "fake" }

func emailConfig() config.EmailConfig {
	return config.EmailConfig{
		Provider:     config.EmailProviderResend,
		APIKey:       "key",
		FromAddress:  "Quotes <quotes@example.com>",
		AdminAddress: "admin@example.com",
	}
}

func validPayload() *model.LeadPayload {
	p := &model.LeadPayload{
		LeadName:  "Ada",
		LeadEmail: "ada@example.com",
		Product:   "Engine",
		ConfigID:  "E-1",
	}
	p.SetRaw(map[string]any{"leadName": "Ada", "leadEmail": "ada@example.com", "product": "Engine", "configId": "E-1"})
	return p
}

func testLogger(buf *bytes.Buffer) *zerolog.Logger {
	l := zerolog.New(buf).Level(zerolog.DebugLevel)
	return &l
}

func TestLeadService_SubmitWithoutDispatcher(t *testing.T) {
	var buf bytes.Buffer
	svc := NewLeadService(emailConfig(), nil, metrics.NewLeadMetrics(prometheus.NewRegistry()))

	result := svc.Submit(context.Background(), testLogger(&buf), validPayload())

	assert.False(t, result.EmailSent)
	assert.NoError(t, result.EmailErr)
	assert.Equal(t, "Engine", result.Summary.Product)
	assert.Contains(t, buf.String(), `"message":"lead received"`)
	assert.Contains(t, buf.String(), `"lead_email":"ada@example.com"`)
	assert.Contains(t, buf.String(), `"payload"`)
}

func TestLeadService_SubmitSendsNotification(t *testing.T) {
	var buf bytes.Buffer
	dispatcher := &fakeDispatcher{}
	svc := NewLeadService(emailConfig(), dispatcher, nil)

	result := svc.Submit(context.Background(), testLogger(&buf), validPayload())

	assert.True(t, result.EmailSent)
	assert.NoError(t, result.EmailErr)

	require.Len(t, dispatcher.calls, 1)
	msg := dispatcher.calls[0]
	assert.Equal(t, "Quotes <quotes@example.com>", msg.From)
	assert.Equal(t, []string{"admin@example.com", "ada@example.com"}, msg.To)
	assert.Equal(t, "Quote request: Engine (E-1)", msg.Subject)
	assert.Contains(t, msg.HTML, "Ada")
}

func TestLeadService_SubmitDispatchFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	dispatchErr := &email.DispatchError{Status: 500, Body: "boom"}
	svc := NewLeadService(emailConfig(), &fakeDispatcher{err: dispatchErr}, nil)

	result := svc.Submit(context.Background(), testLogger(&buf), validPayload())

	assert.False(t, result.EmailSent)
	require.Error(t, result.EmailErr)
	assert.True(t, errors.Is(result.EmailErr, dispatchErr))
	assert.Equal(t, "email provider returned status 500: boom", result.EmailErr.Error())
	assert.Contains(t, buf.String(), "lead notification failed")
}

func TestLeadService_DuplicateAdminAndLeadAddress(t *testing.T) {
	var buf bytes.Buffer
	dispatcher := &fakeDispatcher{}
	cfg := emailConfig()
	cfg.AdminAddress = "ADA@example.com"
	svc := NewLeadService(cfg, dispatcher, nil)

	svc.Submit(context.Background(), testLogger(&buf), validPayload())

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, []string{"ADA@example.com"}, dispatcher.calls[0].To)
}
