package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/topicgen/internal/config"
	"github.com/vk/topicgen/internal/emitter"
	"github.com/vk/topicgen/internal/hcl"
	"github.com/vk/topicgen/internal/yamlcfg"
)

// schemaExtension selects files when an input path is a directory.
const schemaExtension = ".proto"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.DescriptorLoader
	emitter *emitter.Emitter
}

// defaultLoaders lists the sidecar descriptor formats in lookup order.
func defaultLoaders() []config.DescriptorLoader {
	return []config.DescriptorLoader{
		hcl.NewLoader(),
		yamlcfg.NewLoader(),
	}
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger. Passing no loaders selects the
// HCL and YAML descriptor loaders.
func NewApp(outW io.Writer, cfg *Config, loaders ...config.DescriptorLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	em, err := emitter.New(emitter.Options{
		HeaderName: cfg.HeaderName,
		SourceName: cfg.SourceName,
	})
	if err != nil {
		// The templates are embedded, so this is a programmer error.
		panic(fmt.Errorf("failed to initialize emitter: %w", err))
	}
	logger.Debug("Emitter initialized.", "header", em.Options().HeaderName, "source", em.Options().SourceName)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		emitter: em,
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
