package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

const (
	defaultLoginURL   = "https://login.salesforce.com/services/oauth2/token"
	defaultAPIVersion = "v60.0"
	iniSection        = "Salesforce"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Credentials holds the values exchanged for an access token.
type Credentials struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
}

// Missing lists the credential fields that are still empty.
func (c Credentials) Missing() []string {
	var missing []string
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	return missing
}

// Config aggregates application-wide configuration values.
type Config struct {
	Credentials  Credentials
	LoginURL     string
	APIVersion   string
	RateLimitAPI RateLimitConfig
	HTTPTimeout  time.Duration
	Concurrency  int
	ExportDir    string
	ExportFormat string
	PhoneRegion  string
	LogLevel     string
	Lang         string
	ConfigFile   string
}

// Load reads configuration from environment variables, falls back to the
// [Salesforce] section of the config file for credentials and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Credentials: Credentials{
			Username:     os.Getenv("SALESFORCE_USERNAME"),
			Password:     os.Getenv("SALESFORCE_PASSWORD"),
			ClientID:     os.Getenv("SALESFORCE_CLIENT_ID"),
			ClientSecret: os.Getenv("SALESFORCE_CLIENT_SECRET"),
		},
		LoginURL:     getEnv("SALESFORCE_LOGIN_URL", defaultLoginURL),
		APIVersion:   getEnv("SALESFORCE_API_VERSION", defaultAPIVersion),
		HTTPTimeout:  parseDuration(getEnv("HTTP_TIMEOUT", "30s")),
		ExportDir:    getEnv("EXPORT_DIR", "."),
		ExportFormat: strings.ToLower(getEnv("EXPORT_FORMAT", "csv")),
		PhoneRegion:  strings.ToUpper(os.Getenv("EXPORT_PHONE_REGION")),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		Lang:         getEnv("LANG", "en"),
		ConfigFile:   getEnv("CONFIG_FILE", "config.ini"),
	}

	if len(cfg.Credentials.Missing()) > 0 {
		if err := fillFromFile(cfg.ConfigFile, &cfg.Credentials); err != nil {
			return nil, err
		}
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_API", "25/sec"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_API value: %w", err)
	}
	cfg.RateLimitAPI = rl

	concurrency, err := strconv.Atoi(getEnv("LOOKUP_CONCURRENCY", "1"))
	if err != nil || concurrency <= 0 {
		return nil, fmt.Errorf("invalid LOOKUP_CONCURRENCY value: %q", os.Getenv("LOOKUP_CONCURRENCY"))
	}
	cfg.Concurrency = concurrency

	switch cfg.ExportFormat {
	case "csv", "xlsx":
	default:
		return nil, fmt.Errorf("invalid EXPORT_FORMAT value: %q", cfg.ExportFormat)
	}

	return cfg, nil
}

// fillFromFile completes empty credential fields from an ini file. A missing
// file or section is not an error.
func fillFromFile(path string, creds *Credentials) error {
	if path == "" {
		return nil
	}
	file, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if !file.HasSection(iniSection) {
		return nil
	}
	section := file.Section(iniSection)
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = strings.TrimSpace(section.Key(key).String())
		}
	}
	fill(&creds.Username, "username")
	fill(&creds.Password, "password")
	fill(&creds.ClientID, "client_id")
	fill(&creds.ClientSecret, "client_secret")
	return nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
