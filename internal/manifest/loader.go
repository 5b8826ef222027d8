package manifest

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/fsutil"
	"github.com/vk/blockforge/internal/schema"
)

// Loader parses manifest files into their HCL schema representation.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads extension declarations from path, which may be a single .hcl
// file or a directory searched recursively. Files are visited in sorted
// order so repeated loads see the same extension sequence.
func (l *Loader) Load(ctx context.Context, path string) ([]*schema.ExtensionBlock, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading extension manifests...", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("manifest path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk manifest directory", "path", path, "error", err)
			return nil, err
		}
		sort.Strings(files)
	}

	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", path)
		return nil, nil
	}

	// A fresh parser per load: hclparse caches files by name, which would
	// hide edits between loads in watch mode.
	parser := hclparse.NewParser()

	var extensions []*schema.ExtensionBlock
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var cfg schema.ManifestConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}
		extensions = append(extensions, cfg.Extensions...)
		logger.Debug("Loaded manifest file", "file", file, "extensions", len(cfg.Extensions))
	}

	logger.Info("Manifests loaded.", "files", len(files), "extensions", len(extensions))
	return extensions, nil
}
