package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultServerURL is the backend the portal talks to when nothing else is configured
const DefaultServerURL = "http://localhost:5000"

// HomeEnv overrides the config directory, mostly for tests and multiple profiles
const HomeEnv = "FLEXZONE_HOME"

// Config represents the application configuration
type Config struct {
	// Backend server URL
	ServerURL string `json:"server_url"`

	// Email used for the last login, prefilled on the next one
	Email string `json:"email,omitempty"`

	// Log level for the rotating log file (debug, info, warn, error)
	LogLevel string `json:"log_level,omitempty"`

	// Mirror logs to stderr
	LogConsole bool `json:"log_console,omitempty"`

	// OTLP/HTTP collector endpoint; tracing is off when empty
	OTLPEndpoint string `json:"otlp_endpoint,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", false)
	v.SetDefault("otlp_endpoint", "")
	v.SetDefault("email", "")

	return v
}

// Load reads the configuration file at path and applies FLEXZONE_* environment
// overrides on top of it. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix("FLEXZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return fromViper(v), nil
}

// LoadFile reads the configuration file without environment overrides, so a
// later Save does not persist values that only came from the environment.
func LoadFile(path string) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

func read(path string) (*viper.Viper, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return v, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerURL:    strings.TrimRight(v.GetString("server_url"), "/"),
		Email:        v.GetString("email"),
		LogLevel:     v.GetString("log_level"),
		LogConsole:   v.GetBool("log_console"),
		OTLPEndpoint: v.GetString("otlp_endpoint"),
	}
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetGlobalConfigDir returns ~/.flexzone, or $FLEXZONE_HOME when set
func GetGlobalConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".flexzone"), nil
}

// GetGlobalConfigPath returns the path to the global configuration file
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadGlobalConfig loads the global configuration file, without environment overrides
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// SaveGlobalConfig saves the global configuration file
func SaveGlobalConfig(cfg *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}
