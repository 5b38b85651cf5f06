// Package config loads service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEnvFile is read when present; real environment variables win.
const DefaultEnvFile = ".env"

// envNames maps config keys to the environment variables that set them.
var envNames = map[string]string{
	"server.port":             "BACKEND_PORT",
	"server.read_timeout":     "READ_TIMEOUT",
	"server.write_timeout":    "WRITE_TIMEOUT",
	"server.idle_timeout":     "IDLE_TIMEOUT",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"instance_name":           "INSTANCE_NAME",
	"logging.level":           "LOG_LEVEL",
	"fixtures.file":           "FIXTURES_FILE",
}

// Load reads configuration. Precedence: environment, then envFile, then
// defaults. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	fileEnv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", envFile, err)
	}
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
		if val, ok := fileEnv[env]; ok {
			v.SetDefault(key, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("instance_name", "teamfortasks-1")
	v.SetDefault("logging.level", "info")
	v.SetDefault("fixtures.file", "")
}
