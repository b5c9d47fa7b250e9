package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pyplay-labs/pyplay/internal/manifest"
)

var manifestDir string

func init() {
	manifestValidateCmd.Flags().StringVar(&manifestDir, "dir", ".", "Project directory containing package.json")
	manifestCmd.AddCommand(manifestValidateCmd)
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect the project's package.json",
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check package.json identity fields",
	Long: `Validate the name, version, description and author fields of package.json.

The version must be a semantic version; the author may be a string or an
object with a name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(manifestDir, manifest.FileName)
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return manifestError(manifestDir, err)
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s is valid\n", path)
			m, err := manifest.ParseFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s@%s\n", m.Name, m.Version)
			if !m.Author.IsZero() {
				fmt.Fprintf(out, "  author: %s\n", m.Author)
			}
			return nil
		}

		fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("%s is invalid", path)
	},
}
