package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds runtime options for the CLI, API server and TUI
type Settings struct {
	DefaultCurrency string         `mapstructure:"default_currency"`
	EntityType      string         `mapstructure:"entity_type"`
	Format          string         `mapstructure:"format"`
	DataFile        string         `mapstructure:"data_file"`
	API             APISettings    `mapstructure:"api"`
	Logging         LoggingSetting `mapstructure:"logging"`
}

// APISettings configures the HTTP server
type APISettings struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr returns host:port for the listener
func (a APISettings) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// LoggingSetting configures the zap logger
type LoggingSetting struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "console" or "json"
}

// NewViper returns a viper instance with defaults, the TAXCMP_ env prefix
// and the standard config search path. Callers may bind flags to it before
// calling LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("taxcmp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".taxcmp"))

	v.SetEnvPrefix("TAXCMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the config file (if any) and decodes settings.
// An explicit path must exist; the search path is optional.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default_currency", "USD")
	v.SetDefault("entity_type", "corporate")
	v.SetDefault("format", "table")
	v.SetDefault("data_file", "")

	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
