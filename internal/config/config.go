package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация содержит невозможные значения
var ErrInvalidConfig = errors.New("invalid config")

// Переменные окружения с секретами, перекрывают значения из файла
const (
	EnvDBPassword    = "DB_PASSWORD"
	EnvRedisPassword = "REDIS_PASSWORD"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Kafka        KafkaConfig        `toml:"kafka"`
	PetDirectory PetDirectoryConfig `toml:"pet_directory"`
	Booking      BookingConfig      `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// RedisConfig кэш занятости; при Enabled=false используется заглушка
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// KafkaConfig события заявок; при Enabled=false события не публикуются
type KafkaConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

type PetDirectoryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig бизнес-ограничения
type BookingConfig struct {
	MaxBookingDays int `toml:"max_booking_days"`
	MaxRangeDays   int `toml:"max_range_days"`
}

// Load читает TOML файл, подмешивает секреты из .env и окружения, проставляет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 30)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking_service"
	}

	setDefault(&c.Redis.TTL, 300)
	setDefault(&c.Kafka.WriteTimeout, 5)
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "booking-events"
	}

	setDefault(&c.PetDirectory.Timeout, 5)

	setDefault(&c.Booking.MaxBookingDays, domain.DefaultMaxBookingDays)
	setDefault(&c.Booking.MaxRangeDays, domain.DefaultMaxRangeDays)
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate проверяет, что значения после подстановки умолчаний имеют смысл
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.Database.MaxIdleConns > c.Database.MaxOpenConns:
		return fmt.Errorf("%w: database.max_idle_conns > max_open_conns", ErrInvalidConfig)
	case c.PetDirectory.URL == "":
		return fmt.Errorf("%w: pet_directory.url is required", ErrInvalidConfig)
	case c.Redis.Enabled && c.Redis.Addr == "":
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	case c.Kafka.Enabled && len(c.Kafka.Brokers) == 0:
		return fmt.Errorf("%w: kafka.brokers is required when kafka is enabled", ErrInvalidConfig)
	case c.Booking.MaxBookingDays < 1:
		return fmt.Errorf("%w: booking.max_booking_days=%d", ErrInvalidConfig, c.Booking.MaxBookingDays)
	case c.Booking.MaxRangeDays < 1:
		return fmt.Errorf("%w: booking.max_range_days=%d", ErrInvalidConfig, c.Booking.MaxRangeDays)
	}
	return nil
}

// RedisTTL время жизни записей кэша занятости
func (c *Config) RedisTTL() time.Duration {
	return time.Duration(c.Redis.TTL) * time.Second
}
