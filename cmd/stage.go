package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stageCmd represents the stage command.
var stageCmd = newStageCmd()

func newStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage",
		Short: "Copy the runtime library into the binaries directories",
		Long: `Probe the SDK and, when it is complete, copy its runtime library into
<root>/Binaries/<platform> for every staging root. Up-to-date copies are
left alone and copy failures are reported without failing the command.`,
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
				if _, err := wf.Stage(cmd.Context(), platform); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(stageCmd)
}
