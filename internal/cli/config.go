package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the CLI configuration read from the environment.
type Config struct {
	LogLevel string `env:"COLUMN_MAPPER_LOG_LEVEL" env-default:"" env-description:"log level, overrides -v"`
	LogJSON  bool   `env:"COLUMN_MAPPER_LOG_JSON" env-default:"false" env-description:"emit JSON logs"`
	Format   string `env:"COLUMN_MAPPER_FORMAT" env-default:"yaml" env-description:"default output format (yaml or toml)"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to read environment config")
	}

	return cfg, nil
}
