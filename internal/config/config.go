package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds the runtime settings of the assistant server
type Config struct {
	Port            string `mapstructure:"port"`
	ActiveUser      string `mapstructure:"active_user"`
	StoreDriver     string `mapstructure:"store_driver"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	SeedFile        string `mapstructure:"seed_file"`
	LogLevel        string `mapstructure:"log_level"`
	AuctionLeadDays int    `mapstructure:"auction_lead_days"`
	AuctionTimezone string `mapstructure:"auction_timezone"`
}

// Load reads configuration from the environment and, when present, from a
// config.yaml in the working directory or ./config. Environment wins.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnvVars(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("active_user", "Foo")
	v.SetDefault("store_driver", StoreMemory)
	v.SetDefault("sqlite_path", "gallery.db")
	v.SetDefault("seed_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("auction_lead_days", 3)
	v.SetDefault("auction_timezone", "America/Toronto")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("port", "PORT")
	v.BindEnv("active_user", "ACTIVE_USER")
	v.BindEnv("store_driver", "STORE_DRIVER")
	v.BindEnv("sqlite_path", "SQLITE_PATH")
	v.BindEnv("seed_file", "SEED_FILE")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("auction_lead_days", "AUCTION_LEAD_DAYS")
	v.BindEnv("auction_timezone", "AUCTION_TIMEZONE")
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreSQLite {
		return fmt.Errorf("config: unknown store driver %q", c.StoreDriver)
	}
	if strings.TrimSpace(c.ActiveUser) == "" {
		return errors.New("config: active user must not be empty")
	}
	if c.AuctionLeadDays < 0 {
		return fmt.Errorf("config: negative auction lead days %d", c.AuctionLeadDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Location resolves AuctionTimezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AuctionTimezone)
	if err != nil {
		return nil, fmt.Errorf("config: auction timezone %q: %w", c.AuctionTimezone, err)
	}
	return loc, nil
}
