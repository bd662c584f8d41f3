// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when one exists), loads them into structured Go types, and
// validates them so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide defaults for everything that is optional.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any of the code below reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Two env sources feed koanf:

	- Service settings use the LEADINTAKE_ prefix and "__" as the nesting
	  separator, so LEADINTAKE_SERVER__READ_TIMEOUT -> server.read_timeout.
	  A single "_" stays part of the key name.

	- Email settings keep the short names the quote form deployment already
	  uses: EMAIL_API_KEY -> email.api_key, EMAIL_FROM_ADDRESS ->
	  email.from_address, and so on.
*/

const (
	// EnvPrefix is the prefix for service-level settings.
	EnvPrefix = "LEADINTAKE_"

	// EmailEnvPrefix is the prefix for the email integration settings.
	EmailEnvPrefix = "EMAIL_"

	// ServiceName is forced onto the observability config so every log line
	// and trace is tagged the same way.
	ServiceName = "lead-intake"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are checked by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Email         EmailConfig          `koanf:"email"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps request bodies, in echo's size notation ("1M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// Email providers understood by the dispatcher.
const (
	EmailProviderResend   = "resend"
	EmailProviderSendGrid = "sendgrid"
)

// EmailConfig configures the outbound notification email.
//
// An empty APIKey is not an error: the service runs in degraded mode and
// acknowledges leads without sending anything.
type EmailConfig struct {
	Provider     string `koanf:"provider" validate:"oneof=resend sendgrid"`
	APIKey       string `koanf:"api_key"`
	FromAddress  string `koanf:"from_address" validate:"required"`
	AdminAddress string `koanf:"admin_address"`

	// BaseURL overrides the provider endpoint. Empty means the provider default.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`
}

// Enabled reports whether notification emails should be sent.
func (e EmailConfig) Enabled() bool {
	return strings.TrimSpace(e.APIKey) != ""
}

// DefaultConfig returns a Config populated with defaults. LoadConfig
// unmarshals the environment on top of it, so anything not set in env keeps
// the value from here.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "1M",
		},
		Email: EmailConfig{
			Provider:     EmailProviderResend,
			FromAddress:  "Quotes <onboarding@resend.dev>",
			AdminAddress: "delivered@resend.dev",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// serviceKey maps LEADINTAKE_SERVER__READ_TIMEOUT to server.read_timeout.
func serviceKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// emailKey maps EMAIL_API_KEY to email.api_key.
func emailKey(s string) string {
	return "email." + strings.ToLower(strings.TrimPrefix(s, EmailEnvPrefix))
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into the Config structs, validates it, applies defaults, and returns the
// resulting config.
//
// Behavior summary:
//   - Starts from DefaultConfig
//   - Loads LEADINTAKE_* and EMAIL_* env vars
//   - Unmarshals into Config
//   - Overrides observability service name + environment
//   - Validates tags, then the observability block's own rules
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", serviceKey), nil); err != nil {
		return nil, fmt.Errorf("could not load service env variables: %w", err)
	}

	if err := k.Load(env.Provider(EmailEnvPrefix, ".", emailKey), nil); err != nil {
		return nil, fmt.Errorf("could not load email env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Fields absent from env keep their defaults; mapstructure only touches
	// keys that are present.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.Email.Provider = strings.ToLower(strings.TrimSpace(mainConfig.Email.Provider))

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment regardless of what env set, so
	// logs and traces are tagged consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
