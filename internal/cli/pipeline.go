package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pyplay-labs/pyplay/internal/config"
	"github.com/pyplay-labs/pyplay/internal/manifest"
	"github.com/pyplay-labs/pyplay/internal/pipeline"
)

var (
	pipelineDir      string
	pipelineRunner   string
	pipelineFormat   string
	pipelineOutput   string
	pipelineAppIcon  string
	pipelineFileIcon string
)

func init() {
	f := pipelineCmd.Flags()
	f.StringVar(&pipelineDir, "dir", ".", "Project directory containing package.json")
	f.StringVar(&pipelineRunner, "runner", "", "Pipeline runner: export or command (default from config)")
	f.StringVar(&pipelineFormat, "format", "", "Export format: yaml or json (default from config)")
	f.StringVar(&pipelineOutput, "output", "", "Export file, relative to --dir (default .yw_pipeline/pipeline.yaml)")
	f.StringVar(&pipelineAppIcon, "app-icon", "", "Application icon reference (default derived from package.json)")
	f.StringVar(&pipelineFileIcon, "file-icon", "", "File icon reference (default derived from package.json)")
	rootCmd.AddCommand(pipelineCmd)
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Build the application's pipeline configuration and run it",
	Long: `Build the pipeline configuration of the browser application and pass it to
the configured runner.

The export runner writes the configuration to a file for the pipeline host.
The command runner starts the host command set with
'pyplay config set pipeline.command <cmd>' and writes the configuration as JSON
to its stdin.

Icons default to the SVG files in the assets folder of the published package,
derived from the name and version in package.json, or from the assets_dir
setting when present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appIcon, fileIcon, err := resolveIcons(pipelineDir, pipelineAppIcon, pipelineFileIcon)
		if err != nil {
			return err
		}

		runner, err := newRunner(config.PipelineSettings(), cmd)
		if err != nil {
			return err
		}

		logger.Debug("running pipeline",
			zap.String("app_icon", appIcon),
			zap.String("file_icon", fileIcon))

		result, err := pipeline.Execute(cmd.Context(), runner, appIcon, fileIcon)
		if err != nil {
			return err
		}
		return reportPipelineResult(cmd.OutOrStdout(), result)
	},
}

// resolveIcons returns the icon references, filling the ones not given from
// the assets folder.
func resolveIcons(dir, appIcon, fileIcon string) (string, string, error) {
	if appIcon != "" && fileIcon != "" {
		return appIcon, fileIcon, nil
	}

	assetsDir := config.Get(config.KeyAssetsDir)
	if assetsDir == "" {
		m, err := manifest.Load(dir)
		if err != nil {
			return "", "", manifestError(dir, err)
		}
		assetsDir = pipeline.AssetsDir(m.Name, m.Version)
	}

	if appIcon == "" {
		appIcon = pipeline.AssetURL(assetsDir, pipeline.AppIconFile)
	}
	if fileIcon == "" {
		fileIcon = pipeline.AssetURL(assetsDir, pipeline.FileIconFile)
	}
	return appIcon, fileIcon, nil
}

// newRunner selects the runner from the settings, with flags taking precedence.
func newRunner(settings config.Pipeline, cmd *cobra.Command) (pipeline.Runner, error) {
	if pipelineRunner != "" {
		settings.Runner = pipelineRunner
	}
	if pipelineFormat != "" {
		settings.Format = pipelineFormat
	}
	if pipelineOutput != "" {
		settings.Output = pipelineOutput
	}

	switch settings.Runner {
	case "", "export":
		out := settings.Output
		if out == "" {
			out = pipeline.DefaultExportPath
			if settings.Format == pipeline.FormatJSON {
				out = filepath.Join(filepath.Dir(out), "pipeline.json")
			}
		}
		if !filepath.IsAbs(out) {
			out = filepath.Join(pipelineDir, out)
		}
		return &pipeline.ExportRunner{Path: out, Format: settings.Format, Log: logger}, nil
	case "command":
		if len(settings.Command) == 0 {
			return nil, fmt.Errorf("runner %q needs a host command: set %s", settings.Runner, config.KeyCommand)
		}
		return &pipeline.CommandRunner{
			Command: settings.Command[0],
			Args:    settings.Command[1:],
			Dir:     pipelineDir,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
			Log:     logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown pipeline runner %q: supported runners are \"export\" and \"command\"", settings.Runner)
	}
}

func reportPipelineResult(w io.Writer, result *pipeline.Result) error {
	switch {
	case result.Location != "":
		fmt.Fprintf(w, "Wrote pipeline configuration to %s\n", result.Location)
	case result.ExitCode != 0:
		return fmt.Errorf("pipeline command exited with status %d", result.ExitCode)
	default:
		fmt.Fprintln(w, "Pipeline completed")
	}
	return nil
}
