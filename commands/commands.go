// Package commands implements the guidebook CLI subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/guidebook/config"
	"github.com/c360studio/guidebook/guide"
	"github.com/c360studio/guidebook/render"
)

// loadConfig loads the configuration from an explicit path, or from the
// nearest config file at or above the working directory (defaults when
// absent).
func loadConfig(configPath string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// renderGuideFile loads one guide and renders it with the given options.
func renderGuideFile(path string, opts render.Options) (string, error) {
	g, err := guide.Load(path)
	if err != nil {
		return "", err
	}
	return render.Document(g, opts)
}

// outputPathFor returns where the rendered document for a guide file goes:
// the guide's name with the configured extension, either next to the guide
// or inside the configured output directory.
func outputPathFor(guidePath string, cfg *config.Config) string {
	base := filepath.Base(guidePath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + cfg.Output.Extension
	if cfg.Output.Dir != "" {
		return filepath.Join(cfg.Output.Dir, name)
	}
	return filepath.Join(filepath.Dir(guidePath), name)
}

// writeDocument writes a rendered document, creating the output directory
// when needed. The document always ends with a single trailing newline.
func writeDocument(path, document string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if !strings.HasSuffix(document, "\n") {
		document += "\n"
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
