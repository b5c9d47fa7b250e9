package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Runner executes the pipeline for a configuration. The meaning of the result
// belongs to the implementation.
type Runner interface {
	Run(ctx context.Context, cfg *Config) (*Result, error)
}

// Result is what a Runner reports back.
type Result struct {
	Runner   string // Runner kind, e.g. "export" or "command"
	Location string // File written by the runner, if any
	ExitCode int
	Stdout   string
	Stderr   string
}

// Execute builds the configuration from the two icon references and passes it
// to r. The runner's result and error are returned unchanged.
func Execute(ctx context.Context, r Runner, appIcon, fileIcon string) (*Result, error) {
	return r.Run(ctx, NewConfig(appIcon, fileIcon))
}

// Serialization formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Encode serializes cfg in the given format.
func Encode(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatYAML, "yml", "":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling pipeline config to YAML: %w", err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling pipeline config to JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are %q and %q", format, FormatYAML, FormatJSON)
	}
}

// Decode parses a configuration written by Encode.
func Decode(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML, "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing pipeline config YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing pipeline config JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are %q and %q", format, FormatYAML, FormatJSON)
	}
	return &cfg, nil
}
