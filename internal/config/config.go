package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "lista"
	databaseFile   = "lista.db"
	defaultLogLvl  = "info"
	configFileName = "config.yaml"
)

// Environment variables read by Load. They override the config file.
const (
	EnvHome         = "LISTA_HOME"
	EnvDatabasePath = "LISTA_DATABASE_PATH"
	EnvLogLevel     = "LISTA_LOG_LEVEL"
	EnvPasswordCost = "LISTA_PASSWORD_COST"
	EnvThemeColor   = "LISTA_THEME_COLOR"
	EnvThemeMode    = "LISTA_THEME_MODE"
	EnvThemeFile    = "LISTA_THEME_FILE"
)

// ErrInvalidConfig wraps every validation failure reported by Load
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path,omitempty"`
	LogLevel     string      `yaml:"log_level,omitempty"`
	PasswordCost int         `yaml:"password_cost,omitempty"`
	Theme        ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds the preferences used before a user has saved any,
// plus the colors the command line output is drawn with.
type ThemeConfig struct {
	DefaultColor       string `yaml:"default_color,omitempty"`
	DefaultMode        string `yaml:"default_mode,omitempty"`
	colors.ColorScheme `yaml:",inline"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme section of the file named by LISTA_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ThemeConfig `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme.ColorScheme)
		if themeConfig.Theme.DefaultColor != "" {
			config.Theme.DefaultColor = themeConfig.Theme.DefaultColor
		}
		if themeConfig.Theme.DefaultMode != "" {
			config.Theme.DefaultMode = themeConfig.Theme.DefaultMode
		}
	}
}

// Load loads config from the user's config directory.
// A .env file in the working directory is loaded first; variables already
// set in the environment win over it. Returns default config if the file
// doesn't exist.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var config Config
	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	loadThemeFile(&config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks the values that are parsed later on
func (c *Config) Validate() error {
	if _, err := c.Theme.Color(); err != nil {
		return fmt.Errorf("%w: theme.default_color: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Theme.Mode(); err != nil {
		return fmt.Errorf("%w: theme.default_mode: %w", ErrInvalidConfig, err)
	}
	if c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password_cost must be between %d and %d", ErrInvalidConfig, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured slog level
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ResolveDatabasePath returns the configured database file, or lista.db in
// the data directory.
func (c *Config) ResolveDatabasePath() (string, error) {
	if c.DatabasePath != "" {
		return expandHome(c.DatabasePath)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseFile), nil
}

// Color parses the default theme color
func (t ThemeConfig) Color() (models.Color, error) {
	if t.DefaultColor == "" {
		return models.DefaultColor, nil
	}
	return models.ParseColor(t.DefaultColor)
}

// Mode parses the default theme mode
func (t ThemeConfig) Mode() (models.ThemeMode, error) {
	if t.DefaultMode == "" {
		return models.DefaultThemeMode, nil
	}
	return models.ParseThemeMode(t.DefaultMode)
}

// DataDir returns the directory holding the database and logs:
// $LISTA_HOME, or ~/.lista
func DataDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return expandHome(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "."+appName), nil
}

// LogDir returns the directory log files are written to
func LogDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, configFileName), nil
}

// applyEnv overrides file values with LISTA_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPasswordCost); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPasswordCost, v)
		}
		c.PasswordCost = cost
	}
	if v := os.Getenv(EnvThemeColor); v != "" {
		c.Theme.DefaultColor = v
	}
	if v := os.Getenv(EnvThemeMode); v != "" {
		c.Theme.DefaultMode = v
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLvl
	}
	if c.PasswordCost == 0 {
		c.PasswordCost = bcrypt.DefaultCost
	}
	if c.Theme.DefaultColor == "" {
		c.Theme.DefaultColor = models.DefaultColor.Hex()
	}
	if c.Theme.DefaultMode == "" {
		c.Theme.DefaultMode = models.DefaultThemeMode.String()
	}
	c.Theme.ApplyDefaults()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
