package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// ServerConfig is the configuration of the greeting server.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"` // Listen address, e.g. :4567
}

// Config wraps the entire configuration of gomatch.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// ZapLevel parses the configured log level.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
// An empty path skips the file.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	return Load("")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":4567")

	return v
}

var (
	// envBindings maps config keys to the environment variables that can provide them, in order
	// of preference.
	envBindings = map[string][]string{
		"log.level":   {"GOMATCH_LOG_LEVEL", "LOG_LEVEL"},
		"server.addr": {"GOMATCH_SERVER_ADDR", "SERVER_ADDR"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the env key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
