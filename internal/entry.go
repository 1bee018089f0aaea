// Package internal provides the main application initialization and the
// build pipeline: load and validate term files, resolve aliases, assemble
// the structured-data graph, and write the generated site.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lowerpower/www.mycal.net/internal/alias"
	"github.com/lowerpower/www.mycal.net/internal/apperr"
	"github.com/lowerpower/www.mycal.net/internal/export"
	"github.com/lowerpower/www.mycal.net/internal/jsonld"
	"github.com/lowerpower/www.mycal.net/internal/loader"
	"github.com/lowerpower/www.mycal.net/internal/render"
	"github.com/lowerpower/www.mycal.net/internal/storage"
)

// Run performs one build with the given options.
func Run(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := newLogger(cfg)
	logger.Info("Configuration loaded",
		slog.String("data_path", cfg.Data.Path),
		slog.String("output_path", cfg.Output.Path),
		slog.String("base_url", cfg.Site.BaseURL),
		slog.String("log_level", cfg.App.LogLevel.String()))

	_, err := build(cfg, logger)
	return err
}

// newLogger initializes the structured JSON logger and makes it the default.
func newLogger(cfg *Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// build runs the whole pipeline once and returns the number of terms
// generated. It is strictly linear: loader, then alias resolver, then
// termId persistence, then graph builder, then renderer and exporter.
// Any failure aborts before output files are written.
func build(cfg *Config, logger *slog.Logger) (int, error) {
	dataStore, err := storage.NewFS(cfg.Data.Path)
	if err != nil {
		return 0, fmt.Errorf("data directory: %w", err)
	}

	terms, backfills, err := loader.Load(dataStore)
	if err != nil {
		return 0, err
	}
	if len(terms) == 0 {
		return 0, fmt.Errorf("%w in %s", apperr.ErrNoTerms, cfg.Data.Path)
	}

	aliases, err := alias.Resolve(terms)
	if err != nil {
		return 0, err
	}

	// The full term set validated and the alias map resolved; only now do
	// the pending termId backfills reach disk.
	if err := loader.Persist(dataStore, backfills); err != nil {
		return 0, err
	}
	if len(backfills) > 0 {
		logger.Info("assigned new term identifiers", slog.Int("count", len(backfills)))
	}

	renderer, err := render.New(cfg.Site)
	if err != nil {
		return 0, err
	}
	builder := jsonld.New(cfg.Site)

	if err := os.MkdirAll(cfg.Output.Path, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	outStore, err := storage.NewFS(cfg.Output.Path)
	if err != nil {
		return 0, fmt.Errorf("output directory: %w", err)
	}

	// Index page with the full graph.
	page, err := renderer.Index(terms, aliases, builder.Build(terms))
	if err != nil {
		return 0, err
	}
	if err := outStore.Write("index.html", page); err != nil {
		return 0, err
	}

	// One page per canonical term.
	for _, t := range terms {
		page, err := renderer.TermPage(t, builder.Subset(t))
		if err != nil {
			return 0, err
		}
		if err := outStore.Write(t.Slug+"/index.html", page); err != nil {
			return 0, err
		}
	}

	// One redirect page per alias.
	for aliasSlug, target := range aliases {
		page, err := renderer.Redirect(aliasSlug, target)
		if err != nil {
			return 0, err
		}
		if err := outStore.Write(aliasSlug+"/index.html", page); err != nil {
			return 0, err
		}
	}

	// Machine-readable exports and the sitemap.
	artifacts := []struct {
		path  string
		build func() ([]byte, error)
	}{
		{"terms.json", func() ([]byte, error) { return export.TermsJSON(cfg.Site, terms) }},
		{"terms.ndjson", func() ([]byte, error) { return export.TermsNDJSON(cfg.Site, terms) }},
		{"sitemap.xml", func() ([]byte, error) { return export.Sitemap(cfg.Site, terms) }},
	}
	for _, a := range artifacts {
		data, err := a.build()
		if err != nil {
			return 0, err
		}
		if err := outStore.Write(a.path, data); err != nil {
			return 0, err
		}
	}

	logger.Info("site generated",
		slog.Int("terms", len(terms)),
		slog.Int("aliases", len(aliases)),
		slog.String("output", outStore.Root()))
	return len(terms), nil
}
