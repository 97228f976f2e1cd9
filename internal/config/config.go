package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete todomvc configuration
type Config struct {
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Paths   PathsConfig   `mapstructure:"paths" yaml:"paths"`
}

// Store drivers
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// StoreConfig selects and configures the task store
type StoreConfig struct {
	// Driver is the backend: "memory", "file", "sqlite" or "mysql" (default: "file")
	Driver string `mapstructure:"driver" yaml:"driver"`
	// Path is the JSON document (file) or database file (sqlite).
	// Empty means todos.json / todos.db inside paths.data_dir.
	Path string `mapstructure:"path" yaml:"path"`
	// DSN is the data source name for mysql, e.g. "user:pass@tcp(localhost:3306)/todos"
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// Watch re-renders the TUI when the file store is changed by another process (default: true)
	Watch bool `mapstructure:"watch" yaml:"watch"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme: "default" or "mono" (default: "default")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// DefaultRoute is the route shown on start: "#/", "#/active" or "#/completed"
	DefaultRoute string `mapstructure:"default_route" yaml:"default_route"`
	// ShowHelp shows the key help bar below the list (default: true)
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled writes logs to {data_dir}/debug.log (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the log size that triggers rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated logs kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// PathsConfig controls where todomvc keeps its data
type PathsConfig struct {
	// DataDir holds the default store files and logs.
	// Empty means $XDG_DATA_HOME/todomvc or ~/.local/share/todomvc. Supports ~.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// ResolveDataDir returns the data directory with ~ expanded.
func (p *PathsConfig) ResolveDataDir() string {
	if p.DataDir == "" {
		return DefaultDataDir()
	}
	return expandHome(p.DataDir)
}

// ResolvePath returns the file the store should open for file and sqlite
// drivers. Relative paths are resolved against dataDir.
func (s *StoreConfig) ResolvePath(dataDir string) string {
	path := s.Path
	if path == "" {
		switch s.Driver {
		case DriverSQLite:
			path = "todos.db"
		default:
			path = "todos.json"
		}
	}

	path = expandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}
	return path
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Driver: DriverFile,
			Path:   "",
			DSN:    "",
			Watch:  true,
		},
		TUI: TUIConfig{
			Theme:        "default",
			DefaultRoute: "#/",
			ShowHelp:     true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Paths: PathsConfig{
			DataDir: "", // Empty means DefaultDataDir()
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("store.driver", defaults.Store.Driver)
	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("store.dsn", defaults.Store.DSN)
	viper.SetDefault("store.watch", defaults.Store.Watch)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.default_route", defaults.TUI.DefaultRoute)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todomvc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todomvc"
	}
	return filepath.Join(home, ".config", "todomvc")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/todomvc, falling back to
// ~/.local/share/todomvc.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "todomvc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todomvc"
	}
	return filepath.Join(home, ".local", "share", "todomvc")
}

// ValidDrivers returns the list of valid store drivers
func ValidDrivers() []string {
	return []string{DriverMemory, DriverFile, DriverSQLite, DriverMySQL}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// ValidRoutes returns the routes accepted for tui.default_route
func ValidRoutes() []string {
	return []string{"", "#/", "#/active", "#/completed"}
}
