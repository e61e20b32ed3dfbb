package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "development"
	defaultMappingsDir   = "data/token_mappings"
	defaultManifestFile  = "token-list.json"
	defaultLogoStoreDir  = "data/resource-logos"
	defaultOutputDir     = "."
	defaultImageBaseURL  = "https://raw.githubusercontent.com/meterio/bridge-tokens/master/data/resource-logos"
	defaultSummaryOutput = "tokens.json"
)

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // development or production
}

// PathsConfig holds the input and output locations, relative to the project root.
type PathsConfig struct {
	MappingsDir  string `yaml:"mappingsDir"`
	ManifestFile string `yaml:"manifestFile"`
	LogoStoreDir string `yaml:"logoStoreDir"`
	OutputDir    string `yaml:"outputDir"`
	SummaryFile  string `yaml:"summaryFile"`
}

// ImagesConfig holds settings for the generated imageUri.
type ImagesConfig struct {
	BaseURL string `yaml:"baseURL"`
}

// MetricsConfig holds settings for the optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Config is the top-level configuration structure.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Paths   PathsConfig   `yaml:"paths"`
	Images  ImagesConfig  `yaml:"images"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the default configuration when the file does not exist.
// The second return value reports whether the file was found.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	return nil, false, err
}

// Parse unmarshals YAML bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	if c.Paths.MappingsDir == "" {
		c.Paths.MappingsDir = defaultMappingsDir
	}
	if c.Paths.ManifestFile == "" {
		c.Paths.ManifestFile = defaultManifestFile
	}
	if c.Paths.LogoStoreDir == "" {
		c.Paths.LogoStoreDir = defaultLogoStoreDir
	}
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.SummaryFile == "" {
		c.Paths.SummaryFile = defaultSummaryOutput
	}

	if c.Images.BaseURL == "" {
		c.Images.BaseURL = defaultImageBaseURL
	}
	// imageUri is built as <baseURL>/<resourceId>/logo.png
	c.Images.BaseURL = strings.TrimRight(c.Images.BaseURL, "/")
}
