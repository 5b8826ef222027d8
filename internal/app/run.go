package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/blockforge/internal/codegen"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/devserver"
	"github.com/vk/blockforge/internal/manifest"
	"github.com/vk/blockforge/internal/registry"
)

// Run executes the build pipeline: load manifests, build registries,
// generate modules, write artifacts. With a serve port configured it then
// hosts the output directory and rebuilds on manifest changes until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.generateAll(ctx); err != nil {
		return err
	}

	if a.config.ServePort > 0 {
		srv := devserver.New(a.logger, a.config.OutputDir, a.generateAll)
		go srv.Watch(ctx, a.config.ManifestPath, a.config.WatchInterval)
		return srv.ListenAndServe(ctx, a.config.ServePort)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// generateAll builds every extension found under the manifest path and
// writes one module file per extension id into the output directory.
func (a *App) generateAll(ctx context.Context) error {
	exts, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifests: %w", err)
	}
	if len(exts) == 0 {
		return fmt.Errorf("no extension declarations found under %s", a.config.ManifestPath)
	}

	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed creating output directory: %w", err)
	}

	for _, ext := range exts {
		reg := registry.New()
		def, err := manifest.Build(ctx, ext, a.handlers, reg)
		if err != nil {
			return err
		}

		gen := codegen.New()
		gen.BlockIconURI = def.BlockIconURI
		gen.MenuIconURI = def.MenuIconURI
		gen.DocsURI = def.DocsURI

		src, err := gen.Generate(def.ID, def.Name, def.Color, reg)
		if err != nil {
			return fmt.Errorf("failed to generate extension %q: %w", def.ID, err)
		}

		outPath := filepath.Join(a.config.OutputDir, def.ID+".js")
		if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
			return fmt.Errorf("failed writing %s: %w", outPath, err)
		}
		a.logger.Info("Extension module written.", "id", def.ID, "path", outPath, "blocks", len(def.Blocks))
	}

	return nil
}
