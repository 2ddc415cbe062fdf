package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"forum/internal/config"
	"forum/internal/service/content"
)

func main() {
	// Quiet: output goes to pipes
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	logger := config.NewLogger(os.Getenv("ENVIRONMENT"), os.Stderr)
	rootCmd := newRootCmd(content.NewService(logger, nil))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree around a content service.
func newRootCmd(svc contentService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forumctl [command]",
		Short: "Run forum post content through the save and display pipelines",
		Long: `forumctl feeds editor HTML through the same pipelines the API uses.
Input is read from a file argument, or from stdin when none is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPrepareCmd(svc))
	rootCmd.AddCommand(newRenderCmd(svc))
	rootCmd.AddCommand(newExcerptCmd(svc))
	rootCmd.AddCommand(newFormatCmd())
	return rootCmd
}
