package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	AllowOrigins          string
	RoundRobinTimeQuantum float64

	// MaxRoundRobinDispatches caps the slices one Round Robin run may produce.
	// Zero disables the cap.
	MaxRoundRobinDispatches int
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the shared result. Callers must copy it before changing fields.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
	})
	return config, configErr
}

// LoadSchedulerConfig reads the config file at path, or ./config.yaml when
// path is empty. A missing default file is not an error. Environment
// variables prefixed with SCHEDULER_ override file values, and a .env file in
// the working directory is loaded first when present.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.round_robin.max_dispatches", 1_000_000)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		AllowOrigins:          v.GetString("cors.allow_origins"),
		RoundRobinTimeQuantum: v.GetFloat64("scheduler.round_robin.time_quantum"),

		MaxRoundRobinDispatches: v.GetInt("scheduler.round_robin.max_dispatches"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.MaxRoundRobinDispatches < 0 {
		return nil, fmt.Errorf("invalid max_dispatches %d", cfg.MaxRoundRobinDispatches)
	}
	return cfg, nil
}
