package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pyplay-labs/pyplay/internal/manifest"
)

// Result holds the outcome of a scaffold run.
type Result struct {
	Dir      string
	Template *Template
	// Files are the project files written by the copy step, relative to Dir.
	Files    []string
	Warnings []string
}

// Scaffolder runs the full scaffold sequence for a project directory.
type Scaffolder struct {
	Generator Generator
	Log       *zap.Logger
}

// New returns a Scaffolder backed by the embedded templates.
func New(log *zap.Logger) *Scaffolder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scaffolder{
		Generator: &EmbeddedGenerator{Log: log},
		Log:       log,
	}
}

// Plan reads the manifest in dir and returns the template a run would use,
// without writing anything.
func (s *Scaffolder) Plan(dir string) (*Template, error) {
	m, err := manifest.Load(dir)
	if err != nil {
		return nil, err
	}
	return NewTemplate(dir, m), nil
}

// Run loads the manifest, generates the template folder and copies the
// generated files into dir. A missing or malformed manifest fails the run
// before anything is written.
func (s *Scaffolder) Run(ctx context.Context, dir string) (*Result, error) {
	log := s.logger()

	t, err := s.Plan(dir)
	if err != nil {
		return nil, err
	}
	log.Info("scaffolding project",
		zap.String("dir", dir),
		zap.String("name", t.Name),
		zap.String("version", t.Version))

	result := &Result{Dir: dir, Template: t}
	result.Warnings = append(result.Warnings, manifestWarnings(dir)...)
	result.Warnings = append(result.Warnings, dependencyWarnings(t)...)
	for _, w := range result.Warnings {
		log.Debug("scaffold warning", zap.String("warning", w))
	}

	if err := s.Generator.Generate(ctx, t); err != nil {
		return nil, fmt.Errorf("generating template: %w", err)
	}

	files, err := CopyTemplateFiles(dir)
	result.Files = files
	if err != nil {
		return result, err
	}
	log.Debug("copied template files", zap.Strings("files", files))

	return result, nil
}

func (s *Scaffolder) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// manifestWarnings validates package.json against the manifest schema.
func manifestWarnings(dir string) []string {
	res, err := manifest.ValidateFile(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return []string{fmt.Sprintf("Could not validate manifest: %v", err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}

// dependencyWarnings reports version constraints that are not valid ranges.
func dependencyWarnings(t *Template) []string {
	var warnings []string
	all := append(append([]Dependency{}, t.Dependencies.RunTime.Externals...), t.Dependencies.DevTime...)
	for _, d := range all {
		if err := manifest.CheckConstraint(d.Version); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", d.Name, err))
		}
	}
	return warnings
}
