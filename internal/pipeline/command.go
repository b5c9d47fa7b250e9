package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pyplay-labs/pyplay/internal/branding"
)

// CommandRunner runs an external pipeline host. The configuration is written
// as JSON to the command's stdin; its output is streamed to Stdout/Stderr and
// captured in the Result.
type CommandRunner struct {
	Command string
	Args    []string
	Dir     string // Working directory; the current one when empty

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Log    *zap.Logger
}

// Run starts the command and waits for it. A non-zero exit status is
// reported in Result.ExitCode, not as an error.
func (c *CommandRunner) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if c.Command == "" {
		return nil, errors.New("no pipeline command configured")
	}

	name := c.Command
	if c.Dir != "" && !filepath.IsAbs(name) && strings.ContainsAny(name, `/\`) {
		name = filepath.Join(c.Dir, name)
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("pipeline command %q not found: %w", c.Command, err)
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serializing pipeline config: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Env = setEnv(os.Environ(), branding.EnvVar("PIPELINE_DISPLAY_NAME"), cfg.Target.DisplayName)

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if c.Log != nil {
		c.Log.Debug("running pipeline command", zap.String("command", bin), zap.Strings("args", c.Args))
	}

	err = cmd.Run()

	result := &Result{
		Runner: "command",
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("executing pipeline command: %w", err)
	}
	return result, nil
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
