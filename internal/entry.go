// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/notepress/internal/apperr"
	"github.com/starford/notepress/internal/importer"
	"github.com/starford/notepress/internal/slug"
	"github.com/starford/notepress/internal/storage"
	"github.com/starford/notepress/internal/watch"
)

// Run imports the configured vault folder with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{logOut: os.Stderr}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.vault == "" || app.folder == "" {
		return fmt.Errorf("%w: vault path and folder name are required", apperr.ErrUsage)
	}

	cfg := app.config
	logger := newLogger(app.logOut, cfg.App)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("project_dir", cfg.Output.ProjectDir),
		slog.String("posts_dir", cfg.Output.PostsDir),
		slog.String("images_dir", cfg.Output.ImagesDir),
		slog.String("site_url", cfg.Site.URL),
		slog.String("site_base", cfg.Site.BaseFor(app.env)),
		slog.String("highlight_theme", cfg.Site.HighlightTheme),
		slog.String("log_level", cfg.App.LogLevel.String()))

	vault, err := storage.NewFS(app.vault)
	if err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrSourceNotFound, filepath.Join(app.vault, app.folder))
	}

	project, err := storage.NewFS(cfg.Output.ProjectDir)
	if err != nil {
		return fmt.Errorf("init project: %w", err)
	}

	im := importer.New(vault, project, cfg.Layout(), logger)

	runImport := func() error {
		_, err := im.Run(app.folder)
		if app.onImport != nil {
			app.onImport()
		}
		return err
	}

	if err := runImport(); err != nil {
		return err
	}

	if !app.watch {
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(watchCtx)

	g.Go(func() error {
		dir := filepath.Join(vault.Root(), app.folder)
		return watch.Run(gCtx, dir, slug.Ext, watch.DefaultDebounce, logger, func() {
			if err := runImport(); err != nil {
				logger.Error("watcher: import failed", slog.String("error", err.Error()))
			}
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	logger.Info("Watcher stopped")
	return nil
}

func newLogger(w io.Writer, cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
