package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// CatalogConfig points at catalog data files on disk. Empty paths select the
// data compiled into the binary.
type CatalogConfig struct {
	Path     string `mapstructure:"path"      validate:"omitempty,file"`
	NewsPath string `mapstructure:"news_path" validate:"omitempty,file"`
}
