package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultExportPath is where ExportRunner writes when Path is empty, relative
// to the project directory.
var DefaultExportPath = filepath.Join(".yw_pipeline", "pipeline.yaml")

// ExportRunner writes the configuration to a file for a pipeline host that
// picks it up from the project.
type ExportRunner struct {
	Path   string // Output file; DefaultExportPath when empty
	Format string // FormatYAML (default) or FormatJSON
	Log    *zap.Logger
}

// Run writes cfg and reports the file location.
func (e *ExportRunner) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := e.Path
	if path == "" {
		path = DefaultExportPath
	}

	data, err := Encode(cfg, e.Format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing pipeline config %s: %w", path, err)
	}

	if e.Log != nil {
		e.Log.Debug("exported pipeline config", zap.String("path", path), zap.Int("bytes", len(data)))
	}
	return &Result{Runner: "export", Location: path}, nil
}
