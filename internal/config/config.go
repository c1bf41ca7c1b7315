package config

import (
	"os"
	"strconv"
	"time"
)

// Config concentra a configuração da aplicação.
// Tudo vem de variáveis de ambiente com defaults de desenvolvimento.
type Config struct {
	Porta    int
	LogLevel string

	// Banco
	DBHost    string
	DBPorta   int
	DBNome    string
	DBUsuario string
	DBSenha   string
	DBSSL     bool

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// Motor de alertas
	IntervaloAlertas time.Duration

	// Snapshot de carga
	TimeoutCarga time.Duration
	TTLCache     time.Duration

	// Seed do primeiro admin (vazio desativa o seed)
	AdminLogin string
	AdminSenha string
}

// Carregar lê a configuração do ambiente.
func Carregar() *Config {
	return &Config{
		Porta:    getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPorta:   getEnvInt("DB_PORT", 5432),
		DBNome:    getEnv("DB_NAME", "pcp"),
		DBUsuario: getEnv("DB_USERNAME", "postgres"),
		DBSenha:   getEnv("DB_PASSWORD", "postgres"),
		DBSSL:     getEnv("DB_SSL_MODE_DISABLE", "true") != "true",

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		IntervaloAlertas: getEnvDuration("INTERVALO_ALERTAS", 60*time.Second),

		TimeoutCarga: getEnvDuration("TIMEOUT_CARGA", 8*time.Second),
		TTLCache:     getEnvDuration("TTL_CACHE", 10*time.Minute),

		AdminLogin: getEnv("ADMIN_LOGIN", ""),
		AdminSenha: getEnv("ADMIN_SENHA", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
