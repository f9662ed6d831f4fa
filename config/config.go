package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log     Logger        `mapstructure:"logger"`
	DB      Database      `mapstructure:"database"`
	API     API           `mapstructure:"api"`
	Client  Client        `mapstructure:"client"`
	Cache   Cache         `mapstructure:"cache"`
	Alerts  AlertSweeper  `mapstructure:"alerts"`
	Account AccountConfig `mapstructure:"account"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

// Client configures the console client's connection to the API server.
type Client struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// AlertSweeper configures the background watchlist alert sweep.
type AlertSweeper struct {
	Enabled        bool   `mapstructure:"enabled"`
	Schedule       string `mapstructure:"schedule"`
	MaxConcurrency int    `mapstructure:"max_concurrency"`
}

type AccountConfig struct {
	DefaultBalance string `mapstructure:"default_balance"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "stock_tracker")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("api.port", 8000)
	viper.SetDefault("client.base_url", "http://localhost:8000")
	viper.SetDefault("client.timeout", 10*time.Second)
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("alerts.enabled", false)
	viper.SetDefault("alerts.schedule", "@every 5m")
	viper.SetDefault("alerts.max_concurrency", 4)
	viper.SetDefault("account.default_balance", "10000.00")
}
