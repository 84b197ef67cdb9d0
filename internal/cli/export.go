package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
	"github.com/spf13/cobra"

	"github.com/cperrin88/gitmirror/internal/logger"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <alias/path>",
		Short: "Export a cached mirror as a tar.gz archive",
		Long: `Export a cached mirror as a tar.gz archive, e.g. for seeding a cache on
a host without network access to the origin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <encoded name>.tar.gz)")

	return cmd
}

func runExport(cmd *cobra.Command, name, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, _, err := buildManager(cfg)
	if err != nil {
		return err
	}

	repo, err := manager.Repo(name)
	if err != nil {
		return err
	}
	if !repo.Exists() {
		return fmt.Errorf("mirror %s is not cached", name)
	}

	if output == "" {
		output = filepath.Base(repo.Dir()) + ".tar.gz"
	}

	ctx := cmd.Context()

	absDir, err := filepath.Abs(repo.Dir())
	if err != nil {
		return fmt.Errorf("failed to resolve mirror directory: %w", err)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absDir + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read mirror files: %w", err)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	logger.Info("mirror exported", logger.Fields{"repo": name, "archive": output})
	return nil
}
