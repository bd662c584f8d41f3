package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadPayload_ValidateReportsAllMissing(t *testing.T) {
	p := &LeadPayload{LeadName: "Ada"}

	err := p.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.Equal(t, []string{"leadEmail", "product"}, fields)
}

func TestLeadPayload_SummaryDefaults(t *testing.T) {
	p := &LeadPayload{LeadName: "Ada", LeadEmail: "ada@example.com", Product: "Engine"}

	s := p.Summary()
	assert.Equal(t, "Ada", s.Lead.Name)
	assert.Equal(t, "ada@example.com", s.Lead.Email)
	assert.Equal(t, "", s.Lead.Company)
	assert.Equal(t, map[string]any{}, s.Config)
	assert.Zero(t, s.Price)

	body, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"lead": {"name": "Ada", "email": "ada@example.com", "company": ""},
		"product": "Engine",
		"config": {},
		"configId": "",
		"price": 0,
		"notes": "",
		"sourceUrl": ""
	}`, string(body))
}

func TestLeadPayload_RawNeverNil(t *testing.T) {
	p := &LeadPayload{}
	assert.NotNil(t, p.Raw())

	p.SetRaw(map[string]any{"extra": true})
	assert.Equal(t, map[string]any{"extra": true}, p.Raw())
}

func TestNewLeadResponse(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	summary := LeadSummary{Product: "Engine", Config: map[string]any{}}

	ok := NewLeadResponse(&LeadResult{Summary: summary, EmailSent: true}, now)
	body, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"emailError":null`)
	assert.Equal(t, int64(1700000000123), ok.Timestamp)
	assert.True(t, ok.OK)
	assert.Equal(t, "Lead received", ok.Message)

	failed := NewLeadResponse(&LeadResult{Summary: summary, EmailErr: errors.New("provider down")}, now)
	require.NotNil(t, failed.EmailError)
	assert.Equal(t, "provider down", *failed.EmailError)
	assert.False(t, failed.EmailSent)
}
