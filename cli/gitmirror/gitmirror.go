package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cperrin88/gitmirror/internal/cli"
)

var (
	configPath string
	quiet      bool
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gitmirror: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitmirror",
		Short: "A local cache of bare git mirrors",
		Long: `gitmirror keeps bare mirrors of remote git repositories in a local
cache so repeated fetches avoid re-transferring history over a slow
network. Mirrors are updated safely under per-repository file locks;
independent invocations can run concurrently.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress trace output and pass --quiet to git")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Quiet = &quiet
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewUpdateCmd(),
		cli.NewListCmd(),
		cli.NewURLCmd(),
		cli.NewExportCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
