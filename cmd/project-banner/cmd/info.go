package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/project-banner/internal/service/banner"
	"github.com/oshokin/project-banner/internal/service/runner"
)

// output selects the info format, falls back to the configured one.
var output string

// infoCmd prints metadata without calling foo.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print build metadata in the requested format.",
	Long: `Prints the build metadata only, as the welcome banner (text), a table,
JSON or YAML. Unlike the root command it always exits with status 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		requested := output
		if requested == "" {
			requested = settings.Output
		}

		format, err := banner.ParseFormat(requested)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)

		info, err := runner.Resolve(ctx, manifestRepository())
		if err != nil {
			return err
		}

		return banner.RenderFormat(cmd.OutOrStdout(), info, format)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	infoCmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, table, json or yaml")
}
