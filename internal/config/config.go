package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pyplay-labs/pyplay/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRunner    = "pipeline.runner"
	KeyCommand   = "pipeline.command"
	KeyFormat    = "pipeline.format"
	KeyOutput    = "pipeline.output"
	KeyAssetsDir = "assets_dir"
)

// Keys lists every recognized setting.
var Keys = []string{KeyRunner, KeyCommand, KeyFormat, KeyOutput, KeyAssetsDir}

var defaults = map[string]string{
	KeyRunner: "export",
	KeyFormat: "yaml",
}

// Dir returns the path to the config directory (~/.pyplay/). PYPLAY_HOME
// overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pyplay/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with dots replaced, e.g. pipeline.runner is
// PYPLAY_PIPELINE_RUNNER.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Pipeline holds the settings that select and configure the pipeline runner.
type Pipeline struct {
	Runner  string   // "export" or "command"
	Command []string // Host command and its arguments
	Format  string   // "yaml" or "json"
	Output  string   // Export file path
}

// PipelineSettings returns the pipeline settings currently in effect.
func PipelineSettings() Pipeline {
	p := Pipeline{
		Runner: viper.GetString(KeyRunner),
		Format: viper.GetString(KeyFormat),
		Output: viper.GetString(KeyOutput),
	}
	if fields := strings.Fields(viper.GetString(KeyCommand)); len(fields) > 0 {
		p.Command = fields
	}
	return p
}
