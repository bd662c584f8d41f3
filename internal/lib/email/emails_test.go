package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/lead-intake/internal/model"
)

func TestLeadSubject(t *testing.T) {
	assert.Equal(t, "Quote request: Engine (E-1)", LeadSubject(model.LeadSummary{Product: "Engine", ConfigID: "E-1"}))
	assert.Equal(t, "Quote request: Engine", LeadSubject(model.LeadSummary{Product: "Engine"}))
}

func TestLeadRecipients(t *testing.T) {
	assert.Equal(t,
		[]string{"admin@example.com", "lead@example.com"},
		LeadRecipients("admin@example.com", "lead@example.com"))

	assert.Equal(t,
		[]string{"Admin@Example.com"},
		LeadRecipients("Admin@Example.com", "admin@example.com"))

	assert.Equal(t, []string{"lead@example.com"}, LeadRecipients("", "lead@example.com"))
	assert.Empty(t, LeadRecipients("", "  "))
}

func TestNewLeadNotification(t *testing.T) {
	summary := model.LeadSummary{
		Lead:     model.LeadIdentity{Name: "Ada <script>", Email: "ada@example.com", Company: "Engines Ltd"},
		Product:  "Analytical Engine",
		Config:   map[string]any{"mill": "large"},
		ConfigID: "AE-1",
		Price:    1999.5,
		Notes:    "Deliver to London",
	}

	msg, err := NewLeadNotification("Quotes <quotes@example.com>", "admin@example.com", summary)
	require.NoError(t, err)

	assert.Equal(t, "Quotes <quotes@example.com>", msg.From)
	assert.Equal(t, []string{"admin@example.com", "ada@example.com"}, msg.To)
	assert.Equal(t, "Quote request: Analytical Engine (AE-1)", msg.Subject)

	assert.Contains(t, msg.HTML, "Ada &lt;script&gt;")
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "Engines Ltd")
	assert.Contains(t, msg.HTML, "1999.5")
	assert.Contains(t, msg.HTML, "&#34;mill&#34;: &#34;large&#34;")
	assert.Contains(t, msg.HTML, "Deliver to London")
}

func TestFormatConfig(t *testing.T) {
	assert.Equal(t, "", formatConfig(nil))
	assert.Equal(t, "", formatConfig(map[string]any{}))
	assert.Equal(t, "V8, red", formatConfig("V8, red"))
	assert.Equal(t, "{\n  \"color\": \"red\"\n}", formatConfig(map[string]any{"color": "red"}))
}

func TestPreview(t *testing.T) {
	html, err := Preview(TemplateLeadQuote)
	require.NoError(t, err)
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "WX2-16-64-2T")
}
