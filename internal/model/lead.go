// Package model holds the request and response shapes of the lead API.
package model

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// LeadPayload is the quote-request form body.
//
// The json tags double as mapstructure names so the binder can decode the
// raw map with weak typing (e.g. "price": "99.5").
type LeadPayload struct {
	LeadName    string  `json:"leadName" mapstructure:"leadName" validate:"required"`
	LeadEmail   string  `json:"leadEmail" mapstructure:"leadEmail" validate:"required"`
	Product     string  `json:"product" mapstructure:"product" validate:"required"`
	CompanyName string  `json:"companyName" mapstructure:"companyName"`
	Config      any     `json:"config" mapstructure:"config"`
	Price       float64 `json:"price" mapstructure:"price"`
	ConfigID    string  `json:"configId" mapstructure:"configId"`
	Notes       string  `json:"notes" mapstructure:"notes"`
	SourceURL   string  `json:"sourceUrl" mapstructure:"sourceUrl"`

	raw map[string]any
}

var payloadValidator = newPayloadValidator()

// newPayloadValidator reports fields by their JSON names so error lists read
// the same as the form body.
func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the struct tag rules. It reports every failed field at once.
func (p *LeadPayload) Validate() error {
	return payloadValidator.Struct(p)
}

// SetRaw keeps the body exactly as decoded, unknown keys included.
func (p *LeadPayload) SetRaw(raw map[string]any) {
	p.raw = raw
}

// Raw returns the body as received. Never nil.
func (p *LeadPayload) Raw() map[string]any {
	if p.raw == nil {
		return map[string]any{}
	}
	return p.raw
}

// LeadIdentity groups who is asking for the quote.
type LeadIdentity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// LeadSummary is the normalized view of a lead used for logging, the
// notification email and the API response.
type LeadSummary struct {
	Lead      LeadIdentity `json:"lead"`
	Product   string       `json:"product"`
	Config    any          `json:"config"`
	ConfigID  string       `json:"configId"`
	Price     float64      `json:"price"`
	Notes     string       `json:"notes"`
	SourceURL string       `json:"sourceUrl"`
}

// Summary projects the payload, applying defaults for omitted optionals.
func (p *LeadPayload) Summary() LeadSummary {
	cfg := p.Config
	if cfg == nil {
		cfg = map[string]any{}
	}

	return LeadSummary{
		Lead: LeadIdentity{
			Name:    p.LeadName,
			Email:   p.LeadEmail,
			Company: p.CompanyName,
		},
		Product:   p.Product,
		Config:    cfg,
		ConfigID:  p.ConfigID,
		Price:     p.Price,
		Notes:     p.Notes,
		SourceURL: p.SourceURL,
	}
}

// LeadResponse is the 200 body of the lead endpoint.
type LeadResponse struct {
	OK         bool        `json:"ok"`
	Message    string      `json:"message"`
	EmailSent  bool        `json:"emailSent"`
	EmailError *string     `json:"emailError"`
	Data       LeadSummary `json:"data"`
	Timestamp  int64       `json:"timestamp"`
}

// LeadResult is what the lead service hands back to the handler.
type LeadResult struct {
	Summary   LeadSummary
	EmailSent bool
	EmailErr  error
}

// NewLeadResponse builds the acknowledgement body. A dispatch error is
// carried as text; the request itself still succeeds.
func NewLeadResponse(result *LeadResult, now time.Time) LeadResponse {
	resp := LeadResponse{
		OK:        true,
		Message:   "Lead received",
		EmailSent: result.EmailSent,
		Data:      result.Summary,
		Timestamp: now.UnixMilli(),
	}

	if result.EmailErr != nil {
		msg := result.EmailErr.Error()
		resp.EmailError = &msg
	}

	return resp
}
