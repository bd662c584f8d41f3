package email

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deppfellow/lead-intake/internal/lib/utils"
	"github.com/deppfellow/lead-intake/internal/model"
)

// leadQuoteData is what templates/lead_quote.html expects.
type leadQuoteData struct {
	Name      string
	Email     string
	Company   string
	Product   string
	ConfigID  string
	Price     string
	Config    string
	Notes     string
	SourceURL string
}

// NewLeadNotification builds the quote-request email for a lead.
//
// It goes to the admin address and to the lead, with empty addresses dropped
// and duplicates removed case-insensitively (first spelling wins).
func NewLeadNotification(from, admin string, summary model.LeadSummary) (Message, error) {
	html, err := renderTemplate(TemplateLeadQuote, newLeadQuoteData(summary))
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:    from,
		To:      LeadRecipients(admin, summary.Lead.Email),
		Subject: LeadSubject(summary),
		HTML:    html,
	}, nil
}

// LeadSubject is "Quote request: <product> (<configId>)", without the
// parenthesised part when there is no config id.
func LeadSubject(summary model.LeadSummary) string {
	if summary.ConfigID != "" {
		return fmt.Sprintf("Quote request: %s (%s)", summary.Product, summary.ConfigID)
	}
	return fmt.Sprintf("Quote request: %s", summary.Product)
}

// LeadRecipients normalizes and de-duplicates the recipient list.
func LeadRecipients(addresses ...string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))

	for _, addr := range NormalizeRecipients(addresses...) {
		key := strings.ToLower(addr)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}

	return out
}

func newLeadQuoteData(summary model.LeadSummary) leadQuoteData {
	return leadQuoteData{
		Name:      summary.Lead.Name,
		Email:     summary.Lead.Email,
		Company:   summary.Lead.Company,
		Product:   summary.Product,
		ConfigID:  summary.ConfigID,
		Price:     strconv.FormatFloat(summary.Price, 'f', -1, 64),
		Config:    formatConfig(summary.Config),
		Notes:     summary.Notes,
		SourceURL: summary.SourceURL,
	}
}

// formatConfig prints string configs verbatim and anything structured as
// indented JSON. Empty configs render nothing.
func formatConfig(cfg any) string {
	switch v := cfg.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
	}
	return utils.PrettyJSON(cfg)
}
