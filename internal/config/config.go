package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/wallet-agent-chat/internal/infrastructure/database"
)

// Tipos de armazenamento do histórico
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// LLMConfig agrupa as configurações do provedor de LLM
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// HTTPConfig agrupa as configurações do servidor HTTP
type HTTPConfig struct {
	Port           string
	BasePath       string
	GinMode        string
	AllowedOrigins []string
	TLSPFXPath     string
	TLSPFXPassword string
}

// AuthConfig agrupa as configurações dos tokens de sessão
type AuthConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// StoreConfig agrupa as configurações do armazenamento do histórico
type StoreConfig struct {
	Kind        string
	Postgres    database.PostgresConfig
	AutoMigrate bool
	RedisURL    string
	TTL         time.Duration
}

// WalletConfig guarda os dados da integração de carteira
type WalletConfig struct {
	CDPWalletData string
	NetworkID     string
}

// Config contém toda a configuração da aplicação
type Config struct {
	LLM       LLMConfig
	HTTP      HTTPConfig
	Auth      AuthConfig
	Store     StoreConfig
	Wallet    WalletConfig
	LogLevel  string
	LogFormat string
}

// Load carrega os arquivos .env informados (padrão ".env") e lê as variáveis de ambiente.
// Arquivo inexistente não é erro; arquivo malformado é.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("erro ao carregar .env: %w", err)
	}

	return FromEnv()
}

// FromEnv monta a configuração a partir das variáveis de ambiente já definidas
func FromEnv() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			APIKey:  os.Getenv("XAI_API_KEY"),
			BaseURL: getEnv("LLM_BASE_URL", "https://api.x.ai/v1"),
			Model:   getEnv("LLM_MODEL", "grok-beta"),
			Timeout: time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		HTTP: HTTPConfig{
			Port:           getEnv("HTTP_PORT", "8080"),
			BasePath:       getEnv("BASE_PATH", "/api/v1"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
			TLSPFXPath:     os.Getenv("TLS_PFX_PATH"),
			TLSPFXPassword: os.Getenv("TLS_PFX_PASSWORD"),
		},
		Auth: AuthConfig{
			SecretKey:  os.Getenv("JWT_SECRET_KEY"),
			Expiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		},
		Store: StoreConfig{
			Kind: strings.ToLower(getEnv("CHAT_STORE", StoreMemory)),
			Postgres: database.PostgresConfig{
				URL:            os.Getenv("DATABASE_URL"),
				Host:           getEnv("DB_HOST", "localhost"),
				Port:           getEnvInt("DB_PORT", 5432),
				User:           getEnv("DB_USER", "postgres"),
				Password:       getEnv("DB_PASSWORD", "postgres"),
				Database:       getEnv("DB_NAME", "wallet_agent_chat"),
				SSLMode:        getEnv("DB_SSL_MODE", "disable"),
				MaxConnections: int32(getEnvInt("DB_MAX_CONNECTIONS", 10)),
				MinConnections: int32(getEnvInt("DB_MIN_CONNECTIONS", 1)),
			},
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
			RedisURL:    os.Getenv("REDIS_URL"),
			TTL:         time.Duration(getEnvInt("CHAT_TTL_HOURS", 24)) * time.Hour,
		},
		Wallet: WalletConfig{
			CDPWalletData: os.Getenv("CDP_WALLET_DATA"),
			NetworkID:     getEnv("NETWORK_ID", "base-sepolia"),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifica combinações inválidas de configuração.
// A chave do LLM não é obrigatória: sem ela o agente responde com a mensagem de desculpas.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Kind {
	case StoreMemory, StorePostgres:
	case StoreRedis:
		if c.Store.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL é obrigatória quando CHAT_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("CHAT_STORE inválido: %q", c.Store.Kind))
	}

	if c.HTTP.TLSPFXPassword != "" && c.HTTP.TLSPFXPath == "" {
		errs = append(errs, errors.New("TLS_PFX_PASSWORD definida sem TLS_PFX_PATH"))
	}

	return errors.Join(errs...)
}

// WalletConfigured indica se os dados da carteira CDP foram informados
func (c *Config) WalletConfigured() bool {
	return c.Wallet.CDPWalletData != ""
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
