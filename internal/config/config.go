// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//
// ## Ruleset
//   - RULESET_PATH: Caminho do ruleset (YAML ou JSON) (default: rules.yaml)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita tracing OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	RulesetPath string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RulesetPath: getEnv("RULESET_PATH", "rules.yaml"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
