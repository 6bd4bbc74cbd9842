package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Config struct {
	HTTP HTTP
	DB   DB
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "test.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "user_registry")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults are complete.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
	}
	if cfg.DB.Driver != "sqlite" && cfg.DB.Driver != "mysql" {
		return nil, fmt.Errorf("unknown db driver %q", cfg.DB.Driver)
	}
	return cfg, nil
}
