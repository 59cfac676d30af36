package main

import (
	"github.com/spf13/cobra"
)

type globalFlags struct {
	json     bool
	logLevel string
}

func newRootCmd(e *env) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "assetctl",
		Short:         "Plan, upload and delete asset variants against the configured bucket",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, "output JSON")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level for variant events")

	cmd.AddCommand(
		newPlanCmd(e, flags),
		newUploadCmd(e, flags),
		newDeleteCmd(e, flags),
		newTokenCmd(e, flags),
	)

	return cmd
}
