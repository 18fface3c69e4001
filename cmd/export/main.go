// Command export snapshots every published recipe to local JSON files.
// Handy for backups and for diffing content changes across deploys.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"hearth/internal/cache"
	"hearth/internal/config"
	"hearth/internal/recipes"
	"hearth/internal/sanity"
)

func main() {
	out := flag.String("out", "export", "directory to write recipe JSON files to")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	c := lo.Must(cache.MakeCache())
	service := recipes.NewService(sanity.NewClient(cfg.Content), c)

	if err := run(ctx, service, *out); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, service *recipes.Service, out string) error {
	all, err := service.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, r := range all {
		g.Go(func() error {
			full, err := service.BySlug(ctx, r.Slug)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", r.Slug, err)
			}
			return writeRecipe(out, full)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	index := lo.Map(all, func(r recipes.Recipe, _ int) string { return r.Slug })
	if err := writeJSON(filepath.Join(out, "index.json"), index); err != nil {
		return err
	}

	slog.Info("export complete", "recipes", len(all), "dir", out)
	return nil
}

func writeRecipe(out string, r *recipes.Recipe) error {
	return writeJSON(filepath.Join(out, r.Slug+".json"), r)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
