package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED", "SMTP_HOST", "SMTP_PORT", "SMTP_FROM"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	require.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	require.False(t, cfg.TemporalDisabled)
	require.False(t, cfg.SMTPConfigured())
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, "orders@storefront.local", cfg.SMTP.From)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TEMPORAL_ADDRESS", "temporal.internal:7233")
	t.Setenv("TEMPORAL_NAMESPACE", "storefront")
	t.Setenv("TEMPORAL_DISABLED", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "temporal.internal:7233", cfg.TemporalAddress)
	require.Equal(t, "storefront", cfg.TemporalNamespace)
	require.True(t, cfg.TemporalDisabled)
	require.True(t, cfg.SMTPConfigured())
	require.Equal(t, 2525, cfg.SMTP.Port)
	require.Equal(t, "noreply@example.com", cfg.SMTP.From)
}

func TestLoadConfig_RejectsInvalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("SMTP_PORT", "-1")
	_, err = LoadConfig()
	require.Error(t, err)
}
