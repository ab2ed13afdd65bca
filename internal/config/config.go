package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Host      string `mapstructure:"HOST"`
		Port      string `mapstructure:"PORT"`
		MongoURL  string `mapstructure:"MONGO_URL"`
		DBName    string `mapstructure:"DB_NAME"`
		BackupDir string `mapstructure:"BACKUP_DIR"`
	}
)

func NewConfig() (*Config, error) {
	viper.SetEnvPrefix("WEDDINGCARD")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8001")
	viper.SetDefault("MONGO_URL", "mongodb://0.0.0.0:27017")
	viper.SetDefault("DB_NAME", "weddingcard")
	viper.SetDefault("BACKUP_DIR", ".")

	envs := []string{"HOST", "PORT", "MONGO_URL", "DB_NAME", "BACKUP_DIR"}
	for _, key := range envs {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MongoURL == "" {
		return errors.New("MONGO_URL must not be empty")
	}
	if cfg.DBName == "" {
		return errors.New("DB_NAME must not be empty")
	}
	if cfg.BackupDir == "" {
		return errors.New("BACKUP_DIR must not be empty")
	}
	return nil
}
