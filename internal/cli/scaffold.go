package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pyplay-labs/pyplay/internal/manifest"
	"github.com/pyplay-labs/pyplay/internal/scaffold"
)

var (
	scaffoldDir    string
	scaffoldDryRun bool
)

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldDir, "dir", ".", "Project directory containing package.json")
	scaffoldCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "Print the template without writing files")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Regenerate the project files from package.json",
	Long: `Regenerate the project scaffold.

The name, version, description and author are read from package.json. The
project files are rendered into .template/, then src/auto-generated.ts and the
top-level files (README.md, LICENSE, package.json, tsconfig.json,
webpack.config.ts and the ignore files) are copied over the project root,
replacing existing ones.

Examples:
  pyplay scaffold
  pyplay scaffold --dir ../python-playground --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scaffold.New(logger)

		if scaffoldDryRun {
			t, err := s.Plan(scaffoldDir)
			if err != nil {
				return manifestError(scaffoldDir, err)
			}
			out, err := yaml.Marshal(t)
			if err != nil {
				return fmt.Errorf("marshaling template: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}

		result, err := s.Run(cmd.Context(), scaffoldDir)
		if err != nil {
			return manifestError(scaffoldDir, err)
		}

		printScaffoldResult(cmd.OutOrStdout(), result)
		return nil
	},
}

// manifestError turns a missing package.json into an actionable message.
func manifestError(dir string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no %s found in %s: run this command from the project root or pass --dir: %w", manifest.FileName, dir, err)
	}
	return err
}

func printScaffoldResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Scaffolded %s@%s in %s/\n", result.Template.Name, result.Template.Version, result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Run 'yarn' to install dependencies")
	fmt.Fprintf(w, "  2. Run 'yarn start' and open http://localhost:%d\n", result.Template.DevServer.Port)
}
