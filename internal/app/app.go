package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/specialistvlad/batchignore/internal/i18n"
	"github.com/specialistvlad/batchignore/internal/manifest"
	"github.com/specialistvlad/batchignore/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger   *slog.Logger
	registry *registry.Registry
	locale   language.Tag
}

// NewApp builds an App: it registers the modules (coreModules when none are
// given), loads their manifests plus the optional override directory, and
// checks that manifests and Go handlers agree.
func NewApp(logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	locale, ok := i18n.ParseTag(cfg.Locale)
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", cfg.Locale)
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)

		provider, ok := mod.(registry.ManifestProvider)
		if !ok {
			continue
		}
		defs, err := manifest.Load(ctx, provider.Manifests())
		if err != nil {
			return nil, fmt.Errorf("failed to load module manifests: %w", err)
		}
		reg.Populate(ctx, defs)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if cfg.ManifestsPath != "" {
		defs, err := manifest.Load(ctx, os.DirFS(cfg.ManifestsPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load manifests from %s: %w", cfg.ManifestsPath, err)
		}
		reg.Populate(ctx, defs)
		logger.Debug("Manifest overrides loaded.", "path", cfg.ManifestsPath, "count", len(defs))
	}

	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		logger:   logger,
		registry: reg,
		locale:   locale,
	}, nil
}

// Invoke runs one node with the app's logger and locale.
func (a *App) Invoke(ctx context.Context, nodeID string, args map[string]cty.Value) ([]registry.Output, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = i18n.WithLocale(ctx, a.locale)
	return a.registry.Invoke(ctx, nodeID, args)
}

// Nodes returns every registered node definition sorted by ID.
func (a *App) Nodes() []*manifest.Node {
	return a.registry.Nodes()
}

// Locale returns the locale used for status text and display names.
func (a *App) Locale() language.Tag {
	return a.locale
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
