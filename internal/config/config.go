package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Advisor modes.
const (
	AdvisorModeRules = "rules"
	AdvisorModeLLM   = "llm"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Advisor
	AdvisorMode string
	LLMURL      string
	LLMModel    string
	LLMTimeout  time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		AdvisorMode: strings.ToLower(getEnv("ADVISOR_MODE", AdvisorModeRules)),
		LLMURL:      getEnv("LLM_URL", "http://localhost:11434"),
		LLMModel:    getEnv("LLM_MODEL", "llama3"),
	}

	config.JWTExpirationDur = parseDuration("JWT_EXPIRES_IN", 15*time.Minute)
	config.LLMTimeout = parseDuration("LLM_TIMEOUT", 30*time.Second)

	if config.AdvisorMode != AdvisorModeRules && config.AdvisorMode != AdvisorModeLLM {
		log.Printf("Warning: invalid ADVISOR_MODE value '%s', falling back to %s\n", config.AdvisorMode, AdvisorModeRules)
		config.AdvisorMode = AdvisorModeRules
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the active configuration. Tests use it to avoid reading the
// environment.
func Set(c *Config) {
	appConfig = c
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
