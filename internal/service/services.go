package service

import (
	"github.com/deppfellow/lead-intake/internal/server"
)

type Services struct {
	Lead *LeadService
}

func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Lead: NewLeadService(s.Config.Email, s.Email, s.Metrics),
	}, nil
}
