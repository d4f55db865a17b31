package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursedir-api/internal/catalog"
	"github.com/phrazzld/coursedir-api/internal/config"
	"github.com/phrazzld/coursedir-api/internal/redact"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Catalog data and the query service over it
	catalog        *catalog.Catalog
	catalogService service.CatalogService
}

// newApplication creates a new application instance with all dependencies initialized.
// The catalog is loaded from the configured files, or from the embedded
// defaults when no path is set.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.catalog, err = catalog.Load(cfg.Catalog.Path, cfg.Catalog.NewsPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	stats := app.catalog.Stats()
	logger.Info("catalog loaded",
		"courses", stats.Courses,
		"colleges", stats.Colleges,
		"careers", stats.Careers,
		"curated_careers", stats.Curated,
		"news_items", stats.News)

	app.catalogService, err = service.NewCatalogService(app.catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog service: %w", err)
	}

	return app, nil
}
