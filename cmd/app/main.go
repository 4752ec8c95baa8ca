package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/notepress/internal"
	"github.com/starford/notepress/internal/apperr"
	pkgconfig "github.com/starford/notepress/pkg/config"
)

const (
	defaultConfigFile = "config/config.yaml"
	argsUsage         = "<vault-path> <folder-name>"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		printUsage(os.Stderr, cmd.Name)
		return apperr.ErrUsage
	}

	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	load := pkgconfig.Load[internal.Config]
	if !cmd.IsSet("config") {
		load = pkgconfig.LoadOptional[internal.Config]
	}
	if err := load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if project := cmd.String("project"); project != "" {
		cfg.Output.ProjectDir = project
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithSource(cmd.Args().Get(0), cmd.Args().Get(1)),
		internal.WithWatch(cmd.Bool("watch")),
		internal.WithEnv(cmd.String("env")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("import error: %w", err)
	}

	return nil
}

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "usage: %s [--config FILE] [--project DIR] [--watch] %s\n", name, argsUsage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "example:")
	fmt.Fprintf(w, "  %s ~/Documents/ObsidianVault Blog\n", name)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func main() {
	cmd := &cli.Command{
		Name:      "notepress",
		Usage:     "Import Obsidian vault notes into the blog's posts and images",
		ArgsUsage: argsUsage,
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigFile,
				Value:       defaultConfigFile,
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Blog project root (overrides output.project_dir)",
				Sources: cli.EnvVars("APP_PROJECT_DIR"),
			},
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Deployment environment; \"production\" selects the production site base",
				Sources: cli.EnvVars("APP_ENV"),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Keep running and re-import when notes change",
			},
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil && !errors.Is(err, apperr.ErrUsage) {
		slog.Error("application error", slog.String("error", err.Error()))
	}
	os.Exit(exitCode(err))
}
