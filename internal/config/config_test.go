package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"XAI_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "LLM_TIMEOUT_SECONDS",
		"HTTP_PORT", "BASE_PATH", "GIN_MODE", "CORS_ALLOWED_ORIGINS",
		"TLS_PFX_PATH", "TLS_PFX_PASSWORD", "JWT_SECRET_KEY", "JWT_EXPIRATION_HOURS",
		"CHAT_STORE", "DATABASE_URL", "DB_AUTO_MIGRATE", "REDIS_URL", "CHAT_TTL_HOURS",
		"CDP_WALLET_DATA", "NETWORK_ID", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://api.x.ai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "grok-beta", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "/api/v1", cfg.HTTP.BasePath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Expiration)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
	assert.False(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "base-sepolia", cfg.Wallet.NetworkID)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.False(t, cfg.WalletConfigured())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XAI_API_KEY", "xai-test")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CHAT_STORE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/chat")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CDP_WALLET_DATA", "{}")
	t.Setenv("LLM_MODEL", "grok-2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.LLM.APIKey)
	assert.True(t, cfg.WalletConfigured())
	assert.Equal(t, "grok-2", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, StorePostgres, cfg.Store.Kind)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "postgres://u:p@db:5432/chat", cfg.Store.Postgres.ConnectionString())
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_TIMEOUT_SECONDS", "abc")
	t.Setenv("JWT_EXPIRATION_HOURS", "-")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Expiration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "redis without url", env: map[string]string{"CHAT_STORE": "redis"}, wantErr: "REDIS_URL"},
		{name: "unknown store", env: map[string]string{"CHAT_STORE": "sqlite"}, wantErr: "CHAT_STORE"},
		{name: "pfx password without path", env: map[string]string{"TLS_PFX_PASSWORD": "x"}, wantErr: "TLS_PFX_PATH"},
		{name: "redis with url", env: map[string]string{"CHAT_STORE": "redis", "REDIS_URL": "redis://localhost:6379/0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := FromEnv()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LLM_MODEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LLM_MODEL=grok-from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LLM_MODEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "grok-from-file", cfg.LLM.Model)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "grok-beta", cfg.LLM.Model)
}
