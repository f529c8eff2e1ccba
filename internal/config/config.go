// Package config provides configuration for the service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Reasoning endpoint
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Submission policy
	MaxCodeBytes int

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
}

// fileConfig is the optional config.yaml overlay. Env vars win over it.
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	LLM struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		Model     string `yaml:"model"`
		TimeoutMs int    `yaml:"timeout_ms"`
	} `yaml:"llm"`
	Policy struct {
		MaxCodeBytes int `yaml:"max_code_bytes"`
	} `yaml:"policy"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
}

// Load loads configuration from an optional config.yaml file overridden by
// environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:     8080,
		DatabaseURL:  "file:fixmycode.db?cache=shared&mode=rwc",
		LLMBaseURL:   "https://api.intelligence.io.solutions/api/v1",
		LLMModel:     "meta-llama/Llama-3.3-70B-Instruct",
		LLMTimeout:   60 * time.Second,
		MaxCodeBytes: 100000,
		LogLevel:     "info",
		LogFormat:    "text",
		LogOutput:    "stdout",
	}

	cfg.applyFile(getEnv("CONFIG_FILE", "config.yaml"))

	cfg.HTTPPort = getEnvInt("HTTP_PORT", cfg.HTTPPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LLMBaseURL = getEnv("LLM_BASE_URL", cfg.LLMBaseURL)
	cfg.LLMAPIKey = getEnv("LLM_API_KEY", cfg.LLMAPIKey)
	cfg.LLMModel = getEnv("LLM_MODEL", cfg.LLMModel)
	if ms := getEnvInt("LLM_TIMEOUT_MS", 0); ms > 0 {
		cfg.LLMTimeout = time.Duration(ms) * time.Millisecond
	}
	cfg.MaxCodeBytes = getEnvInt("MAX_CODE_BYTES", cfg.MaxCodeBytes)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LogOutput = getEnv("LOG_OUTPUT", cfg.LogOutput)

	return cfg
}

// Validate checks settings that must be present at startup. A missing API
// credential is fatal here, not a per-request error.
func (c *Config) Validate(mockMode bool) error {
	if c.LLMAPIKey == "" && !mockMode {
		return errors.New("LLM_API_KEY is required")
	}
	return nil
}

// applyFile overlays values from a yaml config file, if one exists.
func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		fmt.Fprintf(os.Stderr, "ignoring malformed config file %s: %v\n", path, err)
		return
	}

	if fc.Server.Port > 0 {
		c.HTTPPort = fc.Server.Port
	}
	if fc.Database.URL != "" {
		c.DatabaseURL = fc.Database.URL
	}
	if fc.LLM.BaseURL != "" {
		c.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.APIKey != "" {
		c.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Model != "" {
		c.LLMModel = fc.LLM.Model
	}
	if fc.LLM.TimeoutMs > 0 {
		c.LLMTimeout = time.Duration(fc.LLM.TimeoutMs) * time.Millisecond
	}
	if fc.Policy.MaxCodeBytes > 0 {
		c.MaxCodeBytes = fc.Policy.MaxCodeBytes
	}
	if fc.Logging.Level != "" {
		c.LogLevel = fc.Logging.Level
	}
	if fc.Logging.Format != "" {
		c.LogFormat = fc.Logging.Format
	}
	if fc.Logging.Output != "" {
		c.LogOutput = fc.Logging.Output
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
