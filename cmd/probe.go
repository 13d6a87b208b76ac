package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// probeCmd represents the probe command.
var probeCmd = newProbeCmd()

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check whether the SDK tree is complete",
		Long: `Inspect the configured SDK layout for each target platform and list the
resolved artifacts, or every missing one. The command fails only when the
filesystem itself cannot be read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, _, err := loadWorkflow()
			if err != nil {
				return err
			}

			platforms := parsePlatforms(viper.GetStringSlice(platformsKey))
			if len(platforms) == 0 {
				return errors.New("no target platform given")
			}

			for _, platform := range platforms {
				if _, err := wf.Probe(cmd.Context(), platform); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
