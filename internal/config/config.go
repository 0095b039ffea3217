// Package config loads gallery settings from an optional YAML file and GALLERY_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Drive   DriveConfig   `yaml:"drive"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	Domain          string        `yaml:"domain"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// DataConfig locates the two lookup tables and the face reference image.
// Locations are http(s) URLs or local paths.
type DataConfig struct {
	Directory    string        `yaml:"directory"`
	Index        string        `yaml:"index"`
	LookupImage  string        `yaml:"lookupImage"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
}

// DriveConfig controls the host used for thumbnail and viewer links.
type DriveConfig struct {
	Host string `yaml:"host"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			Directory:    "face_directory.json",
			Index:        "drive_index.json",
			LookupImage:  "faceLookup.jpg",
			FetchTimeout: 30 * time.Second,
		},
		Drive: DriveConfig{
			Host: "drive.google.com",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// applyEnvOverrides reads GALLERY_* variables. DOMAIN is shared with the security
// middleware and keeps its unprefixed name.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GALLERY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DOMAIN"); v != "" {
		cfg.Server.Domain = v
	}
	if v := os.Getenv("GALLERY_DIRECTORY"); v != "" {
		cfg.Data.Directory = v
	}
	if v := os.Getenv("GALLERY_INDEX"); v != "" {
		cfg.Data.Index = v
	}
	if v, ok := os.LookupEnv("GALLERY_LOOKUP_IMAGE"); ok {
		cfg.Data.LookupImage = v
	}
	if v := os.Getenv("GALLERY_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Data.FetchTimeout = d
		}
	}
	if v := os.Getenv("GALLERY_DRIVE_HOST"); v != "" {
		cfg.Drive.Host = v
	}
	if v := os.Getenv("GALLERY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("GALLERY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("GALLERY_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Data.Directory) == "" {
		return fmt.Errorf("data.directory is required")
	}
	if strings.TrimSpace(c.Data.Index) == "" {
		return fmt.Errorf("data.index is required")
	}
	if c.Data.FetchTimeout <= 0 {
		return fmt.Errorf("data.fetchTimeout must be positive")
	}
	return nil
}
