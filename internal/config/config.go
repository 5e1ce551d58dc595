package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Order    OrderConfig
	Spk      SpkConfig
	AMQP     AMQPConfig
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type OrderConfig struct {
	TaxPercent       float64
	DefaultLeadDays  int
	MaxRetryAttempts int
	TxTimeout        time.Duration
}

type SpkConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// AMQPConfig with an empty URL disables event publishing.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, is loaded first and never overrides
// variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "printworks")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "printworks")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ORDER_TAX_PERCENT", 11.0)
	v.SetDefault("ORDER_DEFAULT_LEAD_DAYS", 3)
	v.SetDefault("ORDER_MAX_RETRY_ATTEMPTS", 3)
	v.SetDefault("ORDER_TX_TIMEOUT", "5s")
	v.SetDefault("SPK_MAX_RETRIES", 2)
	v.SetDefault("SPK_RETRY_DELAY", "2s")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "orders_topic")

	shutdownTimeout, err := parseDuration(v, "SERVER_SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	connMaxLifetime, err := parseDuration(v, "DB_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}
	txTimeout, err := parseDuration(v, "ORDER_TX_TIMEOUT")
	if err != nil {
		return nil, err
	}
	spkRetryDelay, err := parseDuration(v, "SPK_RETRY_DELAY")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: shutdownTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Order: OrderConfig{
			TaxPercent:       v.GetFloat64("ORDER_TAX_PERCENT"),
			DefaultLeadDays:  v.GetInt("ORDER_DEFAULT_LEAD_DAYS"),
			MaxRetryAttempts: v.GetInt("ORDER_MAX_RETRY_ATTEMPTS"),
			TxTimeout:        txTimeout,
		},
		Spk: SpkConfig{
			MaxRetries: v.GetInt("SPK_MAX_RETRIES"),
			RetryDelay: spkRetryDelay,
		},
		AMQP: AMQPConfig{
			URL:      v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
		},
	}

	if cfg.Order.MaxRetryAttempts < 1 {
		return nil, fmt.Errorf("ORDER_MAX_RETRY_ATTEMPTS must be at least 1, got %d", cfg.Order.MaxRetryAttempts)
	}
	if cfg.Spk.MaxRetries < 0 {
		return nil, fmt.Errorf("SPK_MAX_RETRIES must not be negative, got %d", cfg.Spk.MaxRetries)
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
