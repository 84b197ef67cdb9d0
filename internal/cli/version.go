package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cperrin88/gitmirror/pkg/gitcmd"
)

const (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for gitmirror and the git binary it wraps",
		RunE:  runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Printf("gitmirror version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)

	gitVersion, err := gitcmd.Version(cmd.Context())
	if err != nil {
		fmt.Printf("git: not detected (%v)\n", err)
		return nil
	}
	fmt.Printf("git: %s\n", gitVersion)
	return nil
}
