package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/pyplay-labs/pyplay/internal/config"
	"github.com/pyplay-labs/pyplay/internal/pipeline"
)

const testPackageJSON = `{
  "name": "@youwol/python-playground",
  "version": "0.1.6",
  "description": "Python playground",
  "author": "greinsp@gmail.com"
}
`

// runCmd executes the root command with args in an isolated config home and
// returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PYPLAY_HOME", t.TempDir())

	scaffoldDir, scaffoldDryRun = ".", false
	pipelineDir, pipelineRunner, pipelineFormat, pipelineOutput = ".", "", "", ""
	pipelineAppIcon, pipelineFileIcon = "", ""
	manifestDir = "."

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(testPackageJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestScaffoldCommand(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCmd(t, "scaffold", "--dir", dir)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if !strings.Contains(out, "Scaffolded @youwol/python-playground@0.1.6") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "http://localhost:3012") {
		t.Errorf("output should mention the dev server port:\n%s", out)
	}
	for _, f := range []string{"README.md", "webpack.config.ts", filepath.Join("src", "auto-generated.ts")} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s not created: %v", f, err)
		}
	}
}

func TestScaffoldDryRunWritesNothing(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCmd(t, "scaffold", "--dir", dir, "--dry-run")
	if err != nil {
		t.Fatalf("scaffold --dry-run: %v", err)
	}
	for _, want := range []string{"name: '@youwol/python-playground'", "port: 3012", "entryFile: ./index.ts"} {
		if !strings.Contains(out, want) {
			t.Errorf("dry-run output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ".template")); err == nil {
		t.Error(".template should not be created by a dry run")
	}
}

func TestScaffoldMissingManifest(t *testing.T) {
	_, err := runCmd(t, "scaffold", "--dir", t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing package.json")
	}
	if !strings.Contains(err.Error(), "no package.json found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPipelineCommandExports(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCmd(t, "pipeline", "--dir", dir, "--format", "json")
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	path := filepath.Join(dir, ".yw_pipeline", "pipeline.json")
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s:\n%s", path, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := pipeline.Decode(data, pipeline.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	wantIcon := "url('/api/assets-gateway/raw/package/QHlvdXdvbC9weXRob24tcGxheWdyb3VuZA==/0.1.6/assets/python_playground_app.svg')"
	if got := cfg.Target.Graphics.AppIcon.Style["background-image"]; got != wantIcon {
		t.Errorf("app icon = %v, want %v", got, wantIcon)
	}
}

func TestPipelineCommandRunnerFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
	dir := newProjectDir(t)
	t.Setenv("PYPLAY_PIPELINE_COMMAND", "sh -c false")

	_, err := runCmd(t, "pipeline", "--dir", dir, "--runner", "command")
	if err == nil || !strings.Contains(err.Error(), "exited with status 1") {
		t.Errorf("expected exit status error, got %v", err)
	}
}

func TestNewRunner(t *testing.T) {
	pipelineDir, pipelineRunner, pipelineFormat, pipelineOutput = "/proj", "", "", ""

	r, err := newRunner(config.Pipeline{Runner: "export", Format: "yaml"}, rootCmd)
	if err != nil {
		t.Fatal(err)
	}
	export, ok := r.(*pipeline.ExportRunner)
	if !ok {
		t.Fatalf("runner = %T, want *pipeline.ExportRunner", r)
	}
	if export.Path != filepath.Join("/proj", ".yw_pipeline", "pipeline.yaml") {
		t.Errorf("Path = %q", export.Path)
	}

	r, err = newRunner(config.Pipeline{Runner: "command", Command: []string{"yw", "run"}}, rootCmd)
	if err != nil {
		t.Fatal(err)
	}
	command, ok := r.(*pipeline.CommandRunner)
	if !ok {
		t.Fatalf("runner = %T, want *pipeline.CommandRunner", r)
	}
	if command.Command != "yw" || len(command.Args) != 1 || command.Args[0] != "run" {
		t.Errorf("command = %q %v", command.Command, command.Args)
	}

	if _, err := newRunner(config.Pipeline{Runner: "command"}, rootCmd); err == nil {
		t.Error("expected error for command runner without command")
	}
	if _, err := newRunner(config.Pipeline{Runner: "ftp"}, rootCmd); err == nil {
		t.Error("expected error for unknown runner")
	}
}

func TestManifestValidateCommand(t *testing.T) {
	dir := newProjectDir(t)
	out, err := runCmd(t, "manifest", "validate", "--dir", dir)
	if err != nil {
		t.Fatalf("manifest validate: %v", err)
	}
	for _, want := range []string{"is valid", "@youwol/python-playground@0.1.6", "author: greinsp@gmail.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	bad := t.TempDir()
	if err := os.WriteFile(filepath.Join(bad, "package.json"), []byte(`{"name":"x","version":"1.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = runCmd(t, "manifest", "validate", "--dir", bad)
	if err == nil {
		t.Fatal("expected error for invalid manifest")
	}
	if !strings.Contains(out, "issue(s)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestIconCommand(t *testing.T) {
	out, err := runCmd(t, "icon", "50px", "10%", "url(x)")
	if err != nil {
		t.Fatalf("icon: %v", err)
	}
	if !strings.Contains(out, `"background-size": "cover"`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = runCmd(t, "icon", "50px", "10%", "url(x)", "contain")
	if err != nil {
		t.Fatalf("icon: %v", err)
	}
	if !strings.Contains(out, `"background-size": "contain"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion = "1.2.3"
	out, err := runCmd(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}
	versionShort = false
}
