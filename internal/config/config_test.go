package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, EmailProviderResend, cfg.Email.Provider)
	assert.Equal(t, "Quotes <onboarding@resend.dev>", cfg.Email.FromAddress)
	assert.Equal(t, "delivered@resend.dev", cfg.Email.AdminAddress)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadConfig_EmailVariables(t *testing.T) {
	t.Setenv("EMAIL_API_KEY", "re_test_123")
	t.Setenv("EMAIL_FROM_ADDRESS", "Sales <sales@example.com>")
	t.Setenv("EMAIL_ADMIN_ADDRESS", "admin@example.com")
	t.Setenv("EMAIL_PROVIDER", "SendGrid")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Email.Enabled())
	assert.Equal(t, "re_test_123", cfg.Email.APIKey)
	assert.Equal(t, "Sales <sales@example.com>", cfg.Email.FromAddress)
	assert.Equal(t, "admin@example.com", cfg.Email.AdminAddress)
	assert.Equal(t, EmailProviderSendGrid, cfg.Email.Provider)
}

func TestLoadConfig_ServiceVariables(t *testing.T) {
	t.Setenv("LEADINTAKE_PRIMARY__ENV", "production")
	t.Setenv("LEADINTAKE_SERVER__PORT", "9090")
	t.Setenv("LEADINTAKE_SERVER__READ_TIMEOUT", "5")
	t.Setenv("LEADINTAKE_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_UnknownProvider(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LEADINTAKE_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEmailConfig_Enabled(t *testing.T) {
	assert.False(t, EmailConfig{}.Enabled())
	assert.False(t, EmailConfig{APIKey: "   "}.Enabled())
	assert.True(t, EmailConfig{APIKey: "key"}.Enabled())
}

func TestGetLogLevel(t *testing.T) {
	cases := []struct {
		env, level, want string
	}{
		{"production", "", "info"},
		{"development", "", "debug"},
		{"staging", "warn", "warn"},
		{"production", "error", "error"},
	}

	for _, tc := range cases {
		c := &ObservabilityConfig{Environment: tc.env, Logging: LoggingConfig{Level: tc.level}}
		assert.Equal(t, tc.want, c.GetLogLevel(), "env=%s level=%q", tc.env, tc.level)
	}
}
