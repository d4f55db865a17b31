package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursedir-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log basic configuration details after successful loading
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Catalog.Path != "" || cfg.Catalog.NewsPath != "" {
		slog.Debug("Catalog override configured",
			"catalog_path_present", cfg.Catalog.Path != "",
			"news_path_present", cfg.Catalog.NewsPath != "")
	}

	return cfg, nil
}
