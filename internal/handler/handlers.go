package handler

import (
	"github.com/deppfellow/lead-intake/internal/server"
	"github.com/deppfellow/lead-intake/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one value.
type Handlers struct {
	Lead    *LeadHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Preview *PreviewHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Lead:    NewLeadHandler(s, services.Lead),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Preview: NewPreviewHandler(s),
	}
}
