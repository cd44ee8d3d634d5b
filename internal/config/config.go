package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage        string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis          Redis         `yaml:"redis"`
	GameTTL        time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"1h"`
	BotDelay       time.Duration `yaml:"bot-delay" env:"BOT_DELAY" env-default:"500ms"`
	ParallelSearch bool          `yaml:"parallel-search" env:"PARALLEL_SEARCH" env-default:"false"`
	CORSOrigins    []string      `yaml:"cors-origins" env:"CORS_ORIGINS" env-default:"*"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the yaml file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage %q", that.Storage)
	}

	if that.GameTTL < 0 || that.BotDelay < 0 {
		return fmt.Errorf("durations must not be negative: game-ttl %s, bot-delay %s", that.GameTTL, that.BotDelay)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
