package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port                int      `mapstructure:"port"`
	ExportRatePerSecond float64  `mapstructure:"export_rate_per_second"`
	ExportBurst         int      `mapstructure:"export_burst"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if config.ExportRatePerSecond < 0 {
		return fmt.Errorf("export rate must be non-negative")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "SERVER_PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.export_rate_per_second", "EXPORT_RATE_PER_SECOND")
}
