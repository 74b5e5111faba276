package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/project-banner/internal/logger"
	"github.com/oshokin/project-banner/internal/repository/manifest"
	"github.com/oshokin/project-banner/internal/version"
)

// exportCmd writes the linked metadata to a YAML manifest.
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the linked build metadata to a YAML manifest.",
	Long: `Writes the metadata compiled into this binary to a YAML manifest
(default ` + manifest.DefaultFilename + `). The manifest can be rendered later with --manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(commandContext(cmd), "export")

		var path string
		if len(args) > 0 {
			path = args[0]
		}

		info, err := version.Current()
		if err != nil {
			return fmt.Errorf("build metadata: %w", err)
		}

		repo := manifest.NewFileRepository(path)
		if err = repo.Save(ctx, info); err != nil {
			return err
		}

		logger.InfoKV(ctx, "Manifest written", "path", repo.Path())

		return nil
	},
}
