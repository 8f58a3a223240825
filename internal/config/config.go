// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"datapurity/cleaning"
)

// envPrefix namespaces every configuration variable.
const envPrefix = "DATAPURITY_"

// Config is the full service configuration: HTTP surface plus the
// cleaning settings handed to every pipeline run.
type Config struct {
	// Server
	Port            string `json:"port"`
	LogLevel        string `json:"log_level"`
	MaxUploadSizeMB int64  `json:"max_upload_size_mb"`
	RateLimitRPS    int    `json:"rate_limit_rps"`

	// Cleaning
	Cleaning cleaning.Settings `json:"-"`
}

// LoadConfig reads configuration from environment variables, falling
// back to defaults suitable for Saudi-market contact data.
func LoadConfig() (*Config, error) {
	settings := cleaning.DefaultSettings()
	settings.DefaultCountryCode = getEnv("DEFAULT_COUNTRY_CODE", settings.DefaultCountryCode)
	settings.MinValidNameLen = getEnvInt("MIN_VALID_NAME_LEN", settings.MinValidNameLen)
	settings.EnableFuzzyDedup = getEnvBool("ENABLE_FUZZY_DEDUP", settings.EnableFuzzyDedup)
	settings.FuzzyNameThreshold = getEnvInt("FUZZY_NAME_THRESHOLD", settings.FuzzyNameThreshold)
	if domains := getEnv("BAD_EMAIL_DOMAINS", ""); domains != "" {
		settings.BadEmailDomains = splitList(domains)
	}

	config := &Config{
		Port:            getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		MaxUploadSizeMB: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 25)),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 10),
		Cleaning:        settings,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every option against its valid domain.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size %d must be positive", c.MaxUploadSizeMB)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit %d must be positive", c.RateLimitRPS)
	}
	return c.Cleaning.Validate()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
