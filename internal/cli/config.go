package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cperrin88/gitmirror/pkg/config"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigPathCmd(),
		newConfigRemotesCmd(),
	)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE:  runConfigPath,
	}
}

func newConfigRemotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List configured remote aliases",
		RunE:  runConfigRemotes,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	cmd.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if ConfigPath != nil && *ConfigPath != "" {
		cmd.Println(*ConfigPath)
		return nil
	}
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}

func runConfigRemotes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	aliases := make([]string, 0, len(cfg.Remotes))
	for alias := range cfg.Remotes {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		cmd.Printf("%s\t%s\n", alias, cfg.Remotes[alias])
	}
	return nil
}
