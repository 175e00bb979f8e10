package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/cardex/internal/domain/card/fee"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
)

// Config holds the cardex configuration.
type Config struct {
	HTTP     HTTPConfig      `yaml:"http"`
	Auth     AuthConfig      `yaml:"auth"`
	Datasets []DatasetConfig `yaml:"datasets"`
	Search   SearchConfig    `yaml:"search"`
	Cache    CacheConfig     `yaml:"cache"`
	Image    ImageConfig     `yaml:"image"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatasetConfig describes one issuer's listing table.
type DatasetConfig struct {
	Company   string `yaml:"company"`
	Path      string `yaml:"path"`
	FeeFormat string `yaml:"fee_format"` // plain, korean
}

// SearchConfig holds browse defaults.
type SearchConfig struct {
	DefaultPageSize int    `yaml:"default_page_size"`
	MaxPageSize     int    `yaml:"max_page_size"`
	DefaultMode     string `yaml:"default_mode"` // expand, tfidf
	DefaultMinFee   int    `yaml:"default_min_fee"`
	DefaultMaxFee   int    `yaml:"default_max_fee"`
	CorpusCompany   string `yaml:"corpus_company"` // issuer whose benefits build the corpus (default: first dataset)
}

// CacheConfig holds the image size cache connection. No addrs disables the cache.
type CacheConfig struct {
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	TTLSec   int      `yaml:"ttl_sec"`
	Prefix   string   `yaml:"key_prefix"`
}

// ImageConfig holds image probing settings.
type ImageConfig struct {
	TimeoutSec int `yaml:"timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Search.DefaultPageSize <= 0 {
		c.Search.DefaultPageSize = 5
	}
	if c.Search.MaxPageSize <= 0 {
		c.Search.MaxPageSize = 50
	}
	if c.Search.DefaultMode == "" {
		c.Search.DefaultMode = string(mode.Expand)
	}
	if c.Search.DefaultMaxFee <= 0 {
		c.Search.DefaultMaxFee = 100000
	}
	if c.Search.CorpusCompany == "" && len(c.Datasets) > 0 {
		c.Search.CorpusCompany = c.Datasets[0].Company
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 7 * 24 * 3600
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "cardex:"
	}
	if c.Image.TimeoutSec <= 0 {
		c.Image.TimeoutSec = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Datasets) == 0 {
		return fmt.Errorf("datasets is required")
	}
	for i, d := range c.Datasets {
		if d.Company == "" {
			return fmt.Errorf("datasets[%d].company is required", i)
		}
		if d.Path == "" {
			return fmt.Errorf("datasets[%d].path is required", i)
		}
		if _, err := fee.ParseFormat(d.FeeFormat); err != nil {
			return fmt.Errorf("datasets[%d].fee_format: %w", i, err)
		}
	}
	if !c.hasDataset(c.Search.CorpusCompany) {
		return fmt.Errorf("search.corpus_company %q matches no dataset", c.Search.CorpusCompany)
	}
	if !mode.Mode(c.Search.DefaultMode).IsValid() {
		return fmt.Errorf("search.default_mode must be \"expand\" or \"tfidf\", got %q", c.Search.DefaultMode)
	}
	if c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("search.default_page_size (%d) exceeds search.max_page_size (%d)",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	if c.Search.DefaultMinFee < 0 || c.Search.DefaultMaxFee < c.Search.DefaultMinFee {
		return fmt.Errorf("search default fee range [%d, %d] is invalid",
			c.Search.DefaultMinFee, c.Search.DefaultMaxFee)
	}
	return nil
}

func (c *Config) hasDataset(company string) bool {
	for _, d := range c.Datasets {
		if d.Company == company {
			return true
		}
	}
	return false
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
