// Package config manages user settings stored at ~/.pyplay/config.yaml,
// overridable with PYPLAY_* environment variables.
package config
