package commands

import (
	"fmt"

	"github.com/rust-dev-tools/rust-semverver/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cargo-semver version %s\n", build.Version)
		},
	}
}
