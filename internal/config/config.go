package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Timezone string         `mapstructure:"timezone" validate:"timezone"`
	Report   ReportConfig   `mapstructure:"report"`
	Client   ClientConfig   `mapstructure:"client"`
}

type ServerConfig struct {
	Port                   int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig `mapstructure:"cors"`
	ShutdownTimeoutSeconds int        `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts"`
}

const (
	SnapshotBackendNone  = "none"
	SnapshotBackendYAML  = "yaml"
	SnapshotBackendMySQL = "mysql"
)

// SnapshotConfig selects where the server keeps copies of the state.
type SnapshotConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=none yaml mysql"`
	Directory string `mapstructure:"directory" validate:"required_if=Backend yaml"`
	// Autosave saves after every successful dispatch.
	Autosave bool `mapstructure:"autosave"`
	// Retention is how many MySQL snapshots are kept; 0 keeps all.
	Retention int `mapstructure:"retention" validate:"min=0"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ReportConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
	// Template overrides the embedded markdown template.
	Template string `mapstructure:"template" validate:"omitempty,readable_file"`
}

type ClientConfig struct {
	ServerURL      string `mapstructure:"server_url" validate:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"min=1"`
}

// Location returns the configured time zone, used to decide what "today" is.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lifeos")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "lifeos")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 5)
	v.SetDefault("snapshot.backend", SnapshotBackendNone)
	v.SetDefault("snapshot.directory", filepath.Join("data", "snapshots"))
	v.SetDefault("snapshot.autosave", false)
	v.SetDefault("snapshot.retention", 20)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("timezone", "Local")
	v.SetDefault("report.output_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("client.server_url", "http://localhost:8080")
	v.SetDefault("client.timeout_seconds", 10)
	v.SetDefault("client.retry_attempts", 3)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("client.server_url", "LIFEOS_SERVER_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind LIFEOS_SERVER_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
