package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/txlog-dev/txlog/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "txlog",
		Short:   "Decode and report on MPS7 transaction logs",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())

	return rootCmd
}
