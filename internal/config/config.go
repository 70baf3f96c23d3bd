package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Бэкенды блокировок бронирования
const (
	LockBackendPostgres = "postgres"
	LockBackendRedis    = "redis"
)

// Переменные окружения, перекрывающие секреты из файла
const (
	envDBPassword    = "DB_PASSWORD"
	envRedisPassword = "REDIS_PASSWORD"
	envAdminToken    = "ADMIN_TOKEN"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Shop     ShopConfig     `toml:"shop"`
	Lock     LockConfig     `toml:"lock"`
	Redis    RedisConfig    `toml:"redis"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL строка подключения для golang-migrate
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled              bool   `toml:"enabled"`
	Path                 string `toml:"path"`
	ServiceName          string `toml:"service_name"`
	StatsIntervalSeconds int    `toml:"stats_interval_seconds"`
}

// ShopConfig параметры магазина: пояс, сетка слотов, админский токен
type ShopConfig struct {
	Timezone               string `toml:"timezone"`
	SlotStepMinutes        int    `toml:"slot_step_minutes"`
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
	MaxRangeDays           int    `toml:"max_range_days"`
	AdminToken             string `toml:"admin_token"`
}

// LockConfig параметры блокировок бронирования
type LockConfig struct {
	Backend     string `toml:"backend"`
	TTLSeconds  int    `toml:"ttl_seconds"`
	WaitMillis  int    `toml:"wait_millis"`
	RetryMillis int    `toml:"retry_millis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load читает .env (если есть), TOML файл, применяет значения по умолчанию,
// переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "reservations",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:                 "/metrics",
			ServiceName:          "reservation-service",
			StatsIntervalSeconds: 15,
		},
		Shop: ShopConfig{
			Timezone:               domain.DefaultShopTimezone,
			SlotStepMinutes:        int(domain.DefaultSlotStep / time.Minute),
			DefaultDurationMinutes: domain.DefaultDurationMinutes,
			MaxRangeDays:           domain.DefaultMaxRangeDays,
		},
		Lock: LockConfig{
			Backend:     LockBackendPostgres,
			TTLSeconds:  domain.DefaultLockTTLSeconds,
			WaitMillis:  domain.DefaultLockWaitMillis,
			RetryMillis: domain.DefaultLockRetryMillis,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(envRedisPassword); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv(envAdminToken); ok {
		c.Shop.AdminToken = v
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: shop.timezone %q: %v", ErrInvalidConfig, c.Shop.Timezone, err)
	}
	if c.Shop.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: shop.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Shop.DefaultDurationMinutes < domain.MinDurationMinutes || c.Shop.DefaultDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: shop.default_duration_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if c.Shop.MaxRangeDays < 0 {
		return fmt.Errorf("%w: shop.max_range_days must not be negative", ErrInvalidConfig)
	}
	switch c.Lock.Backend {
	case LockBackendPostgres:
	case LockBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for the redis lock backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: lock.backend %q, expected %s or %s",
			ErrInvalidConfig, c.Lock.Backend, LockBackendPostgres, LockBackendRedis)
	}
	if c.Lock.TTLSeconds <= 0 || c.Lock.WaitMillis <= 0 || c.Lock.RetryMillis <= 0 {
		return fmt.Errorf("%w: lock timings must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}

// Location пояс магазина, в котором действуют шаблоны
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Shop.Timezone)
}

// SlotStep шаг сетки слотов
func (c *Config) SlotStep() time.Duration {
	return time.Duration(c.Shop.SlotStepMinutes) * time.Minute
}

// LockTTL, LockWait, LockRetry тайминги блокировок
func (c *Config) LockTTL() time.Duration {
	return time.Duration(c.Lock.TTLSeconds) * time.Second
}

func (c *Config) LockWait() time.Duration {
	return time.Duration(c.Lock.WaitMillis) * time.Millisecond
}

func (c *Config) LockRetry() time.Duration {
	return time.Duration(c.Lock.RetryMillis) * time.Millisecond
}
