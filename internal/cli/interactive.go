package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathviz/pkg/pipeline"
	"github.com/matzehuels/pathviz/pkg/session"
)

// interactiveCommand creates the interactive picker command.
func (c *CLI) interactiveCommand() *cobra.Command {
	var (
		inputFormat string
		output      string
	)

	cmd := &cobra.Command{
		Use:     "interactive [matrix-file]",
		Aliases: []string{"i"},
		Short:   "Pick start and end nodes in the terminal",
		Long: `Interactive loads a matrix and lets you pick a start and an end node.
Each pick shows the shortest path. With --output the last state is drawn to
a file when you quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context(), args[0], inputFormat, output)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "matrix format: json, yaml, toml, text (default: from extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final view to this file (svg, png, pdf, json, dot, txt)")

	return cmd
}

func (c *CLI) runInteractive(ctx context.Context, input, inputFormat, output string) error {
	g, err := loadMatrix(input, inputFormat)
	if err != nil {
		return err
	}
	sess, err := session.New(g, c.Config.Render.Width, c.Config.Render.Height)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(NewPathPickerModel(sess), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("interactive: %w", err)
	}
	picker := final.(PathPickerModel)

	if res := picker.Result(); res != nil {
		printResult(*res)
	}
	if output == "" {
		return nil
	}

	format := formatFromExt(output)
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}
	artifacts, err := pipeline.Render(ctx, sess.Plan(), pipeline.Options{
		Formats: []string{format},
		Scale:   c.Config.Render.Scale,
		Arrows:  c.Config.Render.Arrows,
	})
	if err != nil {
		return err
	}
	if err := writeArtifact(output, artifacts[format]); err != nil {
		return err
	}
	printFile(output)
	return nil
}

// formatFromExt maps an output file extension to a render format.
func formatFromExt(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "txt" {
		return pipeline.FormatText
	}
	return ext
}
