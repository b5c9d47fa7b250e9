package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyplay-labs/pyplay/internal/pipeline"
)

func init() {
	rootCmd.AddCommand(iconCmd)
}

var iconCmd = &cobra.Command{
	Use:   "icon <size> <border-radius> <image> [background-size]",
	Short: "Print an icon descriptor",
	Long: `Print the style descriptor the pipeline configuration uses for icons.

Example:
  pyplay icon 100% 15% "url('/assets/app.svg')" contain`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := pipeline.Icon(args[0], args[1], args[2], args[3:]...)
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling descriptor: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
