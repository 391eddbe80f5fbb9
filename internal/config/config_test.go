package config

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Server: ServerConfig{
			Port:                9090,
			ExportRatePerSecond: 2.5,
		},
		DB: DBConfig{
			ConnectionString: "newConnectionString",
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("SERVER_PORT", strconv.Itoa(override.Server.Port))
	os.Setenv("EXPORT_RATE_PER_SECOND", fmt.Sprintf("%f", override.Server.ExportRatePerSecond))
	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)

	cfg := Get()

	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.ExportRatePerSecond, cfg.Server.ExportRatePerSecond)
	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
}
