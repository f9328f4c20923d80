package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathviz/pkg/graph"
	pvio "github.com/matzehuels/pathviz/pkg/io"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	query   queryFlags
	format  string // input format override
	json    bool   // print the result as JSON
	table   bool   // print the distance table from the start node
	noCache bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{table: true}

	cmd := &cobra.Command{
		Use:   "solve [matrix-file]",
		Short: "Print the shortest path between two nodes",
		Long: `Solve loads an adjacency matrix and prints the shortest path from --from to --to.

An unreachable destination is reported, not treated as an error.`,
		Example: `  pathviz solve graph.json --from 0 --to 2
  pathviz solve graph.txt --from 1 --to 0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.query.from, "from", 0, "start node index")
	cmd.Flags().IntVar(&opts.query.to, "to", 0, "end node index")
	cmd.Flags().StringVar(&opts.format, "input-format", "", "matrix format: json, yaml, toml, text (default: from extension)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.table, "table", opts.table, "print the distance table from the start node")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, input string, opts solveOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "solve")

	g, err := loadMatrix(input, opts.format)
	if err != nil {
		return err
	}
	logger.Debug("loaded matrix", "path", input, "nodes", g.Size(), "edges", g.EdgeCount())

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, hit, err := runner.SolveWithCacheInfo(ctx, g, opts.query.from, opts.query.to, false)
	if err != nil {
		return err
	}
	prog.done("from", graph.Label(res.Start), "to", graph.Label(res.End), "cached", hit)

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(res)
	printStats(g.Size(), g.EdgeCount(), hit)

	if opts.table {
		tree, err := shortest.Solve(g, res.Start)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, distanceTable(tree))
	}
	return nil
}

// loadMatrix reads a matrix file, using format when given and the file
// extension otherwise.
func loadMatrix(path, format string) (*graph.Model, error) {
	if format == "" {
		return pvio.ImportMatrix(path)
	}
	f, err := pvio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return pvio.ImportMatrixAs(path, f)
}

// distanceTable renders the distance and predecessor of every node.
func distanceTable(tree *shortest.Tree) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	dimStyle := cellStyle.Foreground(colorDim)

	rows := make([][]string, 0, len(tree.Distances()))
	for v, d := range tree.Distances() {
		via := "-"
		if p, ok := tree.Predecessor(v); ok {
			via = graph.Label(p)
		}
		rows = append(rows, []string{graph.Label(v), d.String(), via})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Distance", "Via").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case !tree.Distance(row).Reachable():
				return dimStyle
			default:
				return cellStyle
			}
		}).
		String()
}
