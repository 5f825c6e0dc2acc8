package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIConsole  = "console"
	UITerminal = "terminal"

	MarkRandom = "random"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	UI         string `yaml:"ui" env:"UI" env-default:"terminal"`
	HumanMark  string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	PlayerName string `yaml:"player-name" env:"PLAYER_NAME" env-default:"player"`
	Search     Search `yaml:"search"`
	Redis      Redis  `yaml:"redis"`
}

type Search struct {
	Workers int `yaml:"workers" env:"SEARCH_WORKERS" env-default:"1"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.UI {
	case UIConsole, UITerminal:
	default:
		return fmt.Errorf("%w: ui %q", ErrInvalidConfig, that.UI)
	}

	switch that.HumanMark {
	case "X", "O", MarkRandom:
	default:
		return fmt.Errorf("%w: human-mark %q", ErrInvalidConfig, that.HumanMark)
	}

	if that.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers %d", ErrInvalidConfig, that.Search.Workers)
	}

	if that.PlayerName == "" {
		return fmt.Errorf("%w: empty player-name", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
