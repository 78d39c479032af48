package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig некорректные значения в конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Redis     RedisConfig     `toml:"redis"`
	Feed      FeedConfig      `toml:"feed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig ограничение частоты запросов на создание/изменение бронирований
type RateLimitConfig struct {
	Enabled           bool   `toml:"enabled"`
	Backend           string `toml:"backend"` // memory | redis
	RequestsPerMinute int    `toml:"requests_per_minute"`
	Burst             int    `toml:"burst"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// FeedConfig настройки живой ленты бронирований (LISTEN/NOTIFY)
type FeedConfig struct {
	Enabled              bool   `toml:"enabled"`
	Channel              string `toml:"channel"`
	MinReconnectInterval int    `toml:"min_reconnect_interval"` // секунды
	MaxReconnectInterval int    `toml:"max_reconnect_interval"` // секунды
}

// Load читает конфигурацию из TOML файла
// Пароли можно переопределить через DB_PASSWORD и REDIS_PASSWORD
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled {
		switch c.RateLimit.Backend {
		case RateLimitBackendMemory:
		case RateLimitBackendRedis:
			if c.Redis.Addr == "" {
				return fmt.Errorf("%w: redis.addr is required for redis rate limit backend", ErrInvalidConfig)
			}
		default:
			return fmt.Errorf("%w: unknown rate_limit.backend %q", ErrInvalidConfig, c.RateLimit.Backend)
		}
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("%w: rate_limit.requests_per_minute must be positive", ErrInvalidConfig)
		}
	}
	if c.Feed.Enabled && c.Feed.Channel == "" {
		return fmt.Errorf("%w: feed.channel is required", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "coaching-calendar",
		},
		RateLimit: RateLimitConfig{
			Backend:           RateLimitBackendMemory,
			RequestsPerMinute: 30,
			Burst:             10,
		},
		Feed: FeedConfig{
			Channel:              "bookings_changed",
			MinReconnectInterval: 1,
			MaxReconnectInterval: 30,
		},
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
}
