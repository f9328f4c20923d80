package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathviz/internal/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.ConfigPath != "" {
				fmt.Fprintln(stdout, c.ConfigPath)
				return nil
			}
			printInfo("No config file found; using defaults")
			printNextStep("Create one at", config.DefaultConfigPath())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.Config.Encode()
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, out)
			return nil
		},
	})

	return cmd
}
