package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Data Dragon defaults
const (
	DefaultBaseURL = "https://ddragon.leagueoflegends.com"
	DefaultVersion = "11.24.1"
	DefaultLocale  = "en_US"

	// LatestVersion asks the client to resolve the newest published version
	LatestVersion = "latest"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig points the client at a Data Dragon deployment
type CatalogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Version string        `mapstructure:"version"` // e.g. "11.24.1" or "latest"
	Locale  string        `mapstructure:"locale"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 disables the client timeout
}

// UIConfig holds list behaviour
type UIConfig struct {
	PageSize          int     `mapstructure:"page_size"`
	LoadMoreThreshold float64 `mapstructure:"load_more_threshold"` // fraction of the visible rows
}

// StoreConfig locates the flag database. An empty path keeps flags in memory.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL: DefaultBaseURL,
			Version: DefaultVersion,
			Locale:  DefaultLocale,
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			PageSize:          5,
			LoadMoreThreshold: 0.5,
		},
		Store: StoreConfig{
			Path: filepath.Join(defaultDataPath(), "champdex.db"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "champdex.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the directory for the log file and flag database
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "champdex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "champdex")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "champdex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "champdex")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit file path wins over the search path.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. CHAMPDEX_CATALOG_VERSION
	v.SetEnvPrefix("CHAMPDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.version", cfg.Catalog.Version)
	v.SetDefault("catalog.locale", cfg.Catalog.Locale)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)

	v.SetDefault("ui.page_size", cfg.UI.PageSize)
	v.SetDefault("ui.load_more_threshold", cfg.UI.LoadMoreThreshold)

	v.SetDefault("store.path", cfg.Store.Path)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate clamps values the list flow cannot work with
func (c *Config) Validate() {
	if c.UI.PageSize < 1 {
		c.UI.PageSize = 1
	}
	if c.UI.LoadMoreThreshold <= 0 || c.UI.LoadMoreThreshold > 1 {
		c.UI.LoadMoreThreshold = 0.5
	}
	c.Catalog.BaseURL = strings.TrimRight(c.Catalog.BaseURL, "/")
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = DefaultBaseURL
	}
	if c.Catalog.Version == "" {
		c.Catalog.Version = DefaultVersion
	}
	if c.Catalog.Locale == "" {
		c.Catalog.Locale = DefaultLocale
	}
	if c.Catalog.Timeout < 0 {
		c.Catalog.Timeout = 0
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
