package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds application configuration.
type Config struct {
	Server       ServerConfig   `mapstructure:"server"`
	InstanceName string         `mapstructure:"instance_name"`
	Logging      LoggingConfig  `mapstructure:"logging"`
	Fixtures     FixturesConfig `mapstructure:"fixtures"`
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// FixturesConfig points at an alternative fixture document. Empty means the
// fixtures compiled into the binary.
type FixturesConfig struct {
	File string `mapstructure:"file"`
}

// Validate ensures required fields are present and well formed.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if n, err := strconv.Atoi(c.Server.Port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("server.port %q is not a valid port", c.Server.Port)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}
