// Package config loads and validates the YAML configuration that wires
// together a registry.FunctionRegistry: which built-in producer sets to
// load, which rule bundles to pull in, and how to reach the bundle
// sync source. Structurally grounded on the teacher's
// config/config.go (Config/GeneralConfig nesting, ConfigManager
// load/validate/default-fill shape), with the country/holiday-specific
// sections replaced by the producer/bundle/sync domain.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	General   GeneralConfig   `yaml:"general"`
	Producers ProducersConfig `yaml:"producers"`
	Bundles   []BundleRef     `yaml:"bundles"`
	Sync      SyncConfig      `yaml:"sync"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneralConfig mirrors the teacher's GeneralConfig, trimmed to a
// default year, a timezone and an environment name. Manager validates
// Timezone and Environment; cmd/annual takes its year from -year (the
// current year when the flag is absent) and reads none of these fields.
type GeneralConfig struct {
	DefaultYear int    `yaml:"default_year"`
	Timezone    string `yaml:"timezone"`
	Environment string `yaml:"environment"` // dev, staging, prod
}

// ProducersConfig selects which built-in producer sets to register.
// Replaces the teacher's per-country CountryConfig: instead of turning
// countries on/off, the unit of selection here is a named producer
// bundle (easter, fixtures, us-federal, ...).
type ProducersConfig struct {
	Builtin []string `yaml:"builtin"`
}

// BundleRef points at a rule bundle: a plain-text file of
// `name = "rule string"` entries (see LoadLocalBundle). Path names a
// local file and Remote a file in the sync repository; cmd/annual loads
// Path entries only and skips entries that set only Remote. Replaces the
// teacher's CustomHoliday entries, which inlined one holiday per list
// item; a bundle here is a whole named file of rules.
type BundleRef struct {
	Path   string `yaml:"path,omitempty"`
	Remote string `yaml:"remote,omitempty"`
}

// SyncConfig configures bundlesync.Client's GitHub contents-API source
// for remote bundles. Grounded on the repo/owner/branch fields the
// teacher's updater package reads out of its sync configuration.
type SyncConfig struct {
	RepoOwner string `yaml:"repo_owner"`
	RepoName  string `yaml:"repo_name"`
	Branch    string `yaml:"branch"`
}

// LoggingConfig holds logging settings, kept from the teacher's
// LoggingConfig with the file-rotation fields dropped (no component here
// writes log files). Manager validates Level; the diagnostic sinks read
// neither Level nor Output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Output string `yaml:"output"` // "stdout", "stderr"
}

// Manager handles configuration loading, defaulting, and validation,
// mirroring the teacher's ConfigManager.
type Manager struct {
	config *Config
	paths  []string
}

// NewManager creates a configuration manager that searches the
// teacher's style of conventional file locations.
func NewManager() *Manager {
	return &Manager{
		paths: []string{
			"annual.yaml",
			"annual.yml",
			"config/annual.yaml",
			"/etc/annual/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".annual.yaml"),
		},
	}
}

// Load loads configuration from the first conventional path that
// exists, falling back to defaults, then applies environment overrides
// and validates the result.
func (m *Manager) Load() (*Config, error) {
	config := DefaultConfig()

	for _, path := range m.paths {
		if err := m.loadFromFile(path, config); err == nil {
			break
		}
	}

	m.loadFromEnvironment(config)

	if err := m.validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	m.config = config
	return config, nil
}

// LoadFromFile loads configuration from a specific file, failing if it
// cannot be read.
func (m *Manager) LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	if err := m.loadFromFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	m.loadFromEnvironment(config)

	if err := m.validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	m.config = config
	return config, nil
}

// Config returns the most recently loaded configuration, loading
// defaults on first use.
func (m *Manager) Config() *Config {
	if m.config == nil {
		config, _ := m.Load()
		return config
	}
	return m.config
}

// DefaultConfig returns the baseline configuration applied before any
// file or environment overrides, mirroring getDefaultConfig.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Timezone:    "UTC",
			Environment: "prod",
		},
		Producers: ProducersConfig{
			Builtin: []string{"easter", "fixtures"},
		},
		Bundles: nil,
		Sync: SyncConfig{
			Branch: "main",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
		},
	}
}

func (m *Manager) loadFromFile(path string, config *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

func (m *Manager) loadFromEnvironment(config *Config) {
	if env := os.Getenv("ANNUAL_TIMEZONE"); env != "" {
		config.General.Timezone = env
	}
	if env := os.Getenv("ANNUAL_ENVIRONMENT"); env != "" {
		config.General.Environment = env
	}
	if env := os.Getenv("ANNUAL_LOG_LEVEL"); env != "" {
		config.Logging.Level = env
	}
	if env := os.Getenv("ANNUAL_SYNC_REPO_OWNER"); env != "" {
		config.Sync.RepoOwner = env
	}
	if env := os.Getenv("ANNUAL_SYNC_REPO_NAME"); env != "" {
		config.Sync.RepoName = env
	}
}

func (m *Manager) validate(config *Config) error {
	if config.General.Timezone != "" && config.General.Timezone != "Local" {
		if _, err := time.LoadLocation(config.General.Timezone); err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
	}

	validEnvs := []string{"dev", "development", "staging", "prod", "production"}
	if !contains(validEnvs, config.General.Environment) {
		return fmt.Errorf("invalid environment: %s (must be one of: %v)", config.General.Environment, validEnvs)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, config.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of: %v)", config.Logging.Level, validLevels)
	}

	for _, b := range config.Bundles {
		if b.Path == "" && b.Remote == "" {
			return fmt.Errorf("bundle entry must set either path or remote")
		}
	}

	return nil
}

// Save writes the current configuration to path, creating parent
// directories as needed.
func (m *Manager) Save(path string) error {
	if m.config == nil {
		return fmt.Errorf("no configuration loaded")
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
