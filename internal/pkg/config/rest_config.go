package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CRUD_DATABASE_DSN
const EnvPrefix = "CRUD"

// RestConfig holds the configuration of the REST/web application
type RestConfig struct {
	Port        string           `mapstructure:"port"`
	SeedOnStart bool             `mapstructure:"seed_on_start"`
	Database    DatabaseSettings `mapstructure:"database"`
	Logger      LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the RestConfig and all nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: port %q: %w", c.Port, err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, applies CRUD_* environment
// overrides and validates the result. A missing file falls back to defaults.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("seed_on_start", true)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "persons.db")
	v.SetDefault("database.db_name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}
