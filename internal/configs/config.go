package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string
	Port        string
	CORSOrigins []string
}

// RealtorConfig holds the upstream search endpoint settings.
type RealtorConfig struct {
	BaseURL       string
	Parallelism   int
	RandomDelayMs int
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Server       ServerConfig
	Realtor      RealtorConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads the configuration from environment variables. A .env file
// is loaded when present; running without one is fine.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded: %v\n", err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "realstate-api")

	cfg.Server.Host = getEnvAsString("API_HOST", "0.0.0.0")
	cfg.Server.Port = getEnvAsString("API_PORT", "8000")
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("API_PORT must be a number, got %q", cfg.Server.Port)
	}
	cfg.Server.CORSOrigins = splitAndTrim(getEnvAsString("CORS_ORIGINS", "http://localhost:3000"))

	cfg.Realtor.BaseURL = getEnvAsString("REALTOR_BASE_URL", "https://www.realtor.com/api/v1/rdc_search_srp")
	cfg.Realtor.Parallelism = getEnvAsInt("REALTOR_PARALLELISM", 1)
	cfg.Realtor.RandomDelayMs = getEnvAsInt("REALTOR_RANDOM_DELAY_MS", 0)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnvAsString reads an environment variable as a string or returns the
// default value.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as an int or returns the default
// value. A set but unparsable value logs a warning.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as a bool or returns the
// default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// splitAndTrim turns a comma-separated list into its trimmed parts.
func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
