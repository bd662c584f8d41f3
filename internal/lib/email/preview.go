package email

import "github.com/deppfellow/lead-intake/internal/model"

// PreviewData contains sample template data for local preview/testing.
//
// It maps templateName -> a representative lead.
var PreviewData = map[Template]model.LeadSummary{
	TemplateLeadQuote: {
		Lead: model.LeadIdentity{
			Name:    "John Doe",
			Email:   "john@example.com",
			Company: "Acme Fabrication",
		},
		Product:   "Workstation X2",
		Config:    map[string]any{"cpu": "16-core", "memory": "64GB", "storage": "2TB NVMe"},
		ConfigID:  "WX2-16-64-2T",
		Price:     4299.99,
		Notes:     "Need delivery before the end of the quarter.",
		SourceURL: "https://example.com/configurator",
	},
}

// Preview renders a template with its PreviewData.
func Preview(name Template) (string, error) {
	return renderTemplate(name, newLeadQuoteData(PreviewData[name]))
}
