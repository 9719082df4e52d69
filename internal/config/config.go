package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Rates    RatesConfig
	Catalog  CatalogConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
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

type RatesConfig struct {
	SourceURL       string
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

type CatalogConfig struct {
	ServicesFile string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "tourquote")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "tourquote")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("RATES_SOURCE_URL", "")
	viper.SetDefault("RATES_REFRESH_INTERVAL", "1h")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_SERVICES_FILE", "internal/catalog/services.yaml")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	refreshInterval, err := time.ParseDuration(viper.GetString("RATES_REFRESH_INTERVAL"))
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := time.ParseDuration(viper.GetString("RATES_FETCH_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Rates: RatesConfig{
			SourceURL:       viper.GetString("RATES_SOURCE_URL"),
			RefreshInterval: refreshInterval,
			FetchTimeout:    fetchTimeout,
		},
		Catalog: CatalogConfig{
			ServicesFile: viper.GetString("CATALOG_SERVICES_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
