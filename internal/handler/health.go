package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lead-intake/internal/middleware"
	"github.com/deppfellow/lead-intake/internal/server"
)

// HealthHandler exposes the endpoint uptime monitors and load balancers use
// to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns service status and the state of the email integration.
//
// The email check only reports whether dispatch is configured. It never
// calls the provider, so a provider outage cannot mark the service
// unhealthy (leads are still accepted in that case).
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	emailCheck := map[string]interface{}{
		"status":   "disabled",
		"provider": h.server.Config.Email.Provider,
	}
	if h.server.Email != nil {
		emailCheck["status"] = "configured"
		emailCheck["provider"] = h.server.Email.Provider()
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"email": emailCheck,
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
