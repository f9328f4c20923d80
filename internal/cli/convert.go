package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pvio "github.com/matzehuels/pathviz/pkg/io"
)

// convertCommand creates the convert command, which rewrites a matrix file
// in another format. The matrix is validated on the way through.
func (c *CLI) convertCommand() *cobra.Command {
	var inputFormat, outputFormat string

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a matrix file between json, yaml, toml, and text",
		Example: `  pathviz convert graph.txt graph.yaml
  pathviz convert graph.json graph.mat --to text`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadMatrix(args[0], inputFormat)
			if err != nil {
				return err
			}
			logger.Debug("loaded matrix", "path", args[0], "nodes", g.Size())

			if outputFormat == "" {
				err = pvio.ExportMatrix(g, args[1])
			} else {
				var f pvio.Format
				if f, err = pvio.ParseFormat(outputFormat); err == nil {
					err = pvio.ExportMatrixAs(g, args[1], f)
				}
			}
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			printSuccess("Converted %d×%d matrix", g.Size(), g.Size())
			printFile(args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFormat, "from", "", "input format (default: from extension)")
	cmd.Flags().StringVar(&outputFormat, "to", "", "output format (default: from extension)")

	return cmd
}
