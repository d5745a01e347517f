package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/avbilling/avbilling/internal/types"
)

type Configuration struct {
	DataDir string        `mapstructure:"data_dir" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

// NewConfig loads the application configuration from config.yaml, .env and
// AVBILLING_* environment variables, in increasing order of precedence.
func NewConfig() (*Configuration, error) {
	// A missing .env is fine; it is a local development convenience
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("AVBILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data")
	v.SetDefault("logging.level", string(types.LogLevelInfo))

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	if !c.Logging.Level.Validate() {
		return errors.New("invalid logging level: " + string(c.Logging.Level))
	}
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		DataDir: "data",
		Logging: LoggingConfig{Level: types.LogLevelDebug},
	}
}
