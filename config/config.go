package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Drivers de persistência aceitos em STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config armazena todas as configurações do serviço de armazéns.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Persistência
	StoreDriver string
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis). RedisAddr vazio desliga o cache de localizações e o rate limiter.
	RedisAddr        string
	CacheTimeout     time.Duration
	LocationCacheTTL time.Duration

	// Catálogo de localizações (YAML). Vazio usa o catálogo padrão.
	LocationCatalogPath string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Configuração inválida encerra o processo.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}

// Load lê e valida as configurações sem encerrar o processo.
func Load() (*Config, error) {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Persistência
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverPostgres),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão

		// 3. Cache (Redis)
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		CacheTimeout:     getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second, // 10s padrão
		LocationCacheTTL: getDurationEnv("LOCATION_CACHE_TTL_MIN", 10) * time.Minute,

		// 4. Catálogo de localizações
		LocationCatalogPath: getEnv("LOCATION_CATALOG_PATH", ""),

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida quando STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER inválido: %q (use %s ou %s)", cfg.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	return cfg, nil
}

// IsDevelopment indica se o serviço roda em ambiente de desenvolvimento.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
