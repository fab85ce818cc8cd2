package config

import (
	"testing"
	"time"

	"github.com/jonathan/travel-planner/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/travel")
	t.Setenv("OPENWEATHERMAP_API_KEY", "owm-key")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/sa.json")
}

func TestNewServerConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, llm.ProviderGeminiREST, cfg.LLMProvider)
	assert.Equal(t, llm.DefaultModel, cfg.LLMModel)
}

func TestNewServerConfig_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewServerConfig_SDKProviderNeedsAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini-sdk")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewServerConfig_UnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")

	_, err := NewServerConfig()
	require.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, cfg.VerifyPassword("hunter22", hash))
	assert.False(t, cfg.VerifyPassword("hunter23", hash))
}

func TestServerConfig_OverridePort(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	require.NoError(t, cfg.OverridePort(8080))
	assert.Equal(t, 8080, cfg.Port)

	err = cfg.OverridePort(99999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTIssuer, cfg.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()
	require.Error(t, err)
}
