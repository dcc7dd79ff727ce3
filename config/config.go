package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	AppName                                  string
	Port                                     int
	MaxProcesses                             int
	DefaultAlgorithm                         string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	RateLimit                                RateLimitConfig
	Logger                                   LoggerConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml (if present), .env and SCHED_*
// environment variables once into the global viper instance.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := load(viper.GetViper(), "")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty, using a private viper instance.
func Load(path string) (*SchedulerConfig, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	setDefaults(v)
	v.SetEnvPrefix("sched")
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
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{}
	cfg.AppName = v.GetString("app.name")
	cfg.Port = v.GetInt("port")
	cfg.MaxProcesses = v.GetInt("scheduler.max_processes")
	cfg.DefaultAlgorithm = v.GetString("scheduler.default_algorithm")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	cfg.RateLimit.RequestsPerSecond = v.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Encoding = v.GetString("logger.encoding")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "cpu-scheduler")
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.max_processes", 20)
	v.SetDefault("scheduler.default_algorithm", "FCFS")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("scheduler.max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	for _, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must be positive, got %v",
				c.MultilevelFeedbackQueueLevelsTimeQuantum)
		}
	}
	return nil
}
