package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Single-user login
	Password string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Advisory report
	GeminiAPIKey   string
	GeminiModel    string
	AdvisorTimeout time.Duration

	// Rate limit for the advisor endpoint, in ulule/limiter notation.
	AdvisorRateLimit string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Password: getEnv("APP_PASSWORD", "changeme"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AdvisorRateLimit: getEnv("ADVISOR_RATE_LIMIT", "5-M"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Parse advisor timeout
	timeoutStr := getEnv("ADVISOR_TIMEOUT", "30s")
	timeoutDur, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid ADVISOR_TIMEOUT value '%s', falling back to 30s\n", timeoutStr)
		timeoutDur = 30 * time.Second
	}
	config.AdvisorTimeout = timeoutDur

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

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
