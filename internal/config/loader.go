package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults.
type Config struct {
	Addr                  string   `json:"addr" yaml:"addr" toml:"addr"`
	DataDir               string   `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	DefaultLanguage       string   `json:"default_language" yaml:"default_language" toml:"default_language"`
	MaxUploadBytes        int64    `json:"max_upload_bytes" yaml:"max_upload_bytes" toml:"max_upload_bytes"`
	RequestTimeoutSeconds int      `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`
	LogLevel              string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	MaxConcurrentOCR      int64    `json:"max_concurrent_ocr" yaml:"max_concurrent_ocr" toml:"max_concurrent_ocr"`
	RateLimitRPS          float64  `json:"rate_limit_rps" yaml:"rate_limit_rps" toml:"rate_limit_rps"`
	RateLimitBurst        int      `json:"rate_limit_burst" yaml:"rate_limit_burst" toml:"rate_limit_burst"`
	CORSEnabled           bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins           []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	CORSMethods           []string `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods"`
	CORSHeaders           []string `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers"`
	CORSMaxAgeSeconds     int      `json:"cors_max_age_seconds" yaml:"cors_max_age_seconds" toml:"cors_max_age_seconds"`
}

// Defaults for unspecified fields.
const (
	DefaultAddr           = ":8080"
	DefaultDataDir        = "tessdata"
	DefaultLanguage       = "eng"
	DefaultMaxUploadBytes = 10 << 20
	DefaultTimeoutSeconds = 15
	DefaultCORSMaxAge     = 600
	DefaultRateLimitBurst = 10
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// FromEnv reads configuration from environment variables. TESSDATA_PATH is
// honored as a fallback for the data dir since Tesseract installs export it.
func FromEnv() Config {
	var cfg Config
	cfg.Addr = os.Getenv("OCRD_ADDR")
	cfg.DataDir = os.Getenv("OCRD_DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("TESSDATA_PATH")
	}
	cfg.DefaultLanguage = os.Getenv("OCRD_DEFAULT_LANGUAGE")
	cfg.LogLevel = os.Getenv("OCRD_LOG_LEVEL")
	cfg.MaxUploadBytes = envInt64("OCRD_MAX_UPLOAD_BYTES")
	cfg.RequestTimeoutSeconds = int(envInt64("OCRD_REQUEST_TIMEOUT"))
	cfg.MaxConcurrentOCR = envInt64("OCRD_MAX_CONCURRENT_OCR")
	cfg.RateLimitRPS = envFloat("OCRD_RATE_LIMIT_RPS")
	cfg.RateLimitBurst = int(envInt64("OCRD_RATE_LIMIT_BURST"))
	return cfg
}

// Merge overlays o onto c: fields set in o win.
func (c Config) Merge(o Config) Config {
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.DefaultLanguage != "" {
		c.DefaultLanguage = o.DefaultLanguage
	}
	if o.MaxUploadBytes != 0 {
		c.MaxUploadBytes = o.MaxUploadBytes
	}
	if o.RequestTimeoutSeconds != 0 {
		c.RequestTimeoutSeconds = o.RequestTimeoutSeconds
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.MaxConcurrentOCR != 0 {
		c.MaxConcurrentOCR = o.MaxConcurrentOCR
	}
	if o.RateLimitRPS != 0 {
		c.RateLimitRPS = o.RateLimitRPS
	}
	if o.RateLimitBurst != 0 {
		c.RateLimitBurst = o.RateLimitBurst
	}
	if o.CORSEnabled {
		c.CORSEnabled = true
	}
	if o.CORSOrigins != nil {
		c.CORSOrigins = o.CORSOrigins
	}
	if o.CORSMethods != nil {
		c.CORSMethods = o.CORSMethods
	}
	if o.CORSHeaders != nil {
		c.CORSHeaders = o.CORSHeaders
	}
	if o.CORSMaxAgeSeconds != 0 {
		c.CORSMaxAgeSeconds = o.CORSMaxAgeSeconds
	}
	return c
}

// ApplyDefaults fills remaining unset fields with service defaults.
func (c Config) ApplyDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = DefaultLanguage
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.CORSMaxAgeSeconds == 0 {
		c.CORSMaxAgeSeconds = DefaultCORSMaxAge
	}
	if c.RateLimitBurst == 0 {
		c.RateLimitBurst = DefaultRateLimitBurst
	}
	return c
}

func envInt64(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func envFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
