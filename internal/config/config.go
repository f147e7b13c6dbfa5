package config

import (
	"fmt"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7000"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	JWTSecretKey      string `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY" env-required:"true"`
	Match             Match  `yaml:"match"`
	Rating            Rating `yaml:"rating"`
	Search            Search `yaml:"search"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Match struct {
	BoardSize     int           `yaml:"board-size" env-default:"3"`
	TurnTimeout   time.Duration `yaml:"turn-timeout" env-default:"30s"`
	Retention     time.Duration `yaml:"retention" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep-interval" env-default:"5s"`
	SweepWorkers  int           `yaml:"sweep-workers" env-default:"4"`
	MaxTxRetries  int           `yaml:"max-tx-retries" env-default:"8"`
}

type Rating struct {
	Base          int    `yaml:"base" env-default:"1200"`
	AIBaseline    int    `yaml:"ai-baseline" env-default:"1200"`
	PvPDifficulty string `yaml:"pvp-difficulty" env-default:"hard"`
}

type Search struct {
	ExhaustiveLimit int `yaml:"exhaustive-limit" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

const (
	minBoardSize = 3
	maxBoardSize = 8
)

// Load - reads the yaml file at path, then overrides it from the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Match.BoardSize < minBoardSize || config.Match.BoardSize > maxBoardSize {
		return nil, fmt.Errorf("match.board-size must be between %d and %d, got %d",
			minBoardSize, maxBoardSize, config.Match.BoardSize)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return net.JoinHostPort(that.Host, that.Port)
}
