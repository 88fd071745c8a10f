// Package config resolves pickupdeck's process-wide settings.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. The result is resolved once at start and passed
// explicitly to the components that need it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FileEnv names the env var holding the path of an optional YAML config file.
	FileEnv = "PICKUPDECK_CONFIG"
	// BackendURLEnv is the base URL of the delivery backend.
	BackendURLEnv = "BACKEND_URL"
	// DriverEnv is the default driver name for the not-picked screen.
	DriverEnv = "PICKUPDECK_DRIVER"
	// LogFileEnv overrides where the TUI writes its log.
	LogFileEnv = "PICKUPDECK_LOG_FILE"
	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the service name reported to the trace backend.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	// DefaultLogFile is used when no log file is configured.
	DefaultLogFile = "pickupdeck.log"
	// DefaultServiceName is reported to the trace backend.
	DefaultServiceName = "pickupdeck"
)

// ErrNoBackendURL is returned by Validate when BackendURL is empty.
var ErrNoBackendURL = errors.New("backend url is required (set BACKEND_URL or backend_url)")

// Config holds the resolved settings.
type Config struct {
	BackendURL   string `yaml:"backend_url"`
	DriverName   string `yaml:"driver_name"`
	LogFile      string `yaml:"log_file"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

// Defaults returns a Config with every optional field populated.
func Defaults() Config {
	return Config{
		LogFile:     DefaultLogFile,
		ServiceName: DefaultServiceName,
	}
}

// Load resolves the configuration. path may be empty, in which case the
// PICKUPDECK_CONFIG env var is consulted; a missing path means no file.
func Load(path string) (Config, error) {
	return LoadWithOverrides(path, Config{})
}

// LoadWithOverrides is Load with a final layer, typically command-line
// flags, whose non-empty fields win over the file and the environment.
func LoadWithOverrides(path string, overrides Config) (Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv(FileEnv)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.mergeEnv()
	cfg.overlay(overrides)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays non-empty values from a YAML file. ${VAR} references in
// the file are expanded before parsing.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var fromFile Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &fromFile); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.overlay(fromFile)
	return nil
}

func (c *Config) mergeEnv() {
	c.overlay(Config{
		BackendURL:   os.Getenv(BackendURLEnv),
		DriverName:   os.Getenv(DriverEnv),
		LogFile:      os.Getenv(LogFileEnv),
		OTLPEndpoint: os.Getenv(OTLPEndpointEnv),
		ServiceName:  os.Getenv(ServiceNameEnv),
	})
}

// overlay copies every non-empty field of o onto c.
func (c *Config) overlay(o Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.BackendURL, o.BackendURL)
	set(&c.DriverName, o.DriverName)
	set(&c.LogFile, o.LogFile)
	set(&c.OTLPEndpoint, o.OTLPEndpoint)
	set(&c.ServiceName, o.ServiceName)
}

func (c *Config) normalize() {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	c.DriverName = strings.TrimSpace(c.DriverName)
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	if c.BackendURL == "" {
		return ErrNoBackendURL
	}
	return nil
}
