package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/ui"
)

const (
	// AppName names the config and log directories.
	AppName = "prefsheet"
	// ConfigFile is the configuration file name inside Dir.
	ConfigFile = "config.toml"
	// SchemaFile is the default schema file name inside Dir.
	SchemaFile = "schema.yaml"
	// ValuesFile is the default values file name inside Dir.
	ValuesFile = "values.toml"
	// EnvPrefix prefixes environment overrides, e.g. PREFSHEET_UI_TOGGLE_STYLE.
	EnvPrefix = "PREFSHEET"
	// EnvConfig overrides the configuration file path.
	EnvConfig = "PREFSHEET_CONFIG"
)

// Config is the application configuration.
type Config struct {
	Schema string    `mapstructure:"schema"`
	Values string    `mapstructure:"values"`
	UI     UIConfig  `mapstructure:"ui"`
	Log    LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `mapstructure:"title"`
	ToggleStyle string `mapstructure:"toggle_style"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Manager loads configuration from one file.
type Manager struct {
	configPath string
}

// NewManager creates a manager for path. An empty path falls back to
// PREFSHEET_CONFIG and then to config.toml in Dir.
func NewManager(path string) *Manager {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = filepath.Join(Dir(), ConfigFile)
	}
	return &Manager{configPath: path}
}

// Dir returns the platform-specific configuration directory.
func Dir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", AppName)
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), AppName)
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", AppName)
	}
}

// ConfigPath returns the configuration file path.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Exists checks if the configuration file exists.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// Load reads the configuration file, when present, and applies environment
// overrides. Relative schema and values paths resolve against the directory
// holding the configuration file.
func (m *Manager) Load() (*Config, error) {
	base := filepath.Dir(m.configPath)

	v := viper.New()
	v.SetDefault("schema", SchemaFile)
	v.SetDefault("values", ValuesFile)
	v.SetDefault("ui.title", "")
	v.SetDefault("ui.toggle_style", "auto")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")

	v.SetConfigFile(m.configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(m.configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logging.Debug("config: loaded %s", m.configPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Schema = resolve(base, cfg.Schema)
	cfg.Values = resolve(base, cfg.Values)
	if cfg.Log.Dir != "" {
		cfg.Log.Dir = resolve(base, cfg.Log.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func resolve(base, path string) string {
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks the configuration fields.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Schema) == "" {
		errs = append(errs, fmt.Errorf("schema cannot be empty"))
	}
	if strings.TrimSpace(c.Values) == "" {
		errs = append(errs, fmt.Errorf("values cannot be empty"))
	}
	if _, err := ui.ParseToggleStyle(c.UI.ToggleStyle); err != nil {
		errs = append(errs, fmt.Errorf("ui.toggle_style: %w", err))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// ToggleStyle resolves ui.toggle_style, mapping auto to the platform default.
func (c *Config) ToggleStyle() ui.ToggleStyle {
	s, err := ui.ParseToggleStyle(c.UI.ToggleStyle)
	if err != nil {
		return ui.ToggleCheckbox
	}
	return s
}

// LogLevel resolves log.level.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}
