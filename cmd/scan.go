package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"capres.dev/pkg/capres/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [prefix...]",
		Short: "List third-party modules declared by build descriptors",
		Long: `Walk the third-party directory and list every module declared by a build
descriptor whose file name starts with one of the given prefixes. Without
arguments the configured companion prefixes are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, _, err := loadWorkflow()
			if err != nil {
				return err
			}

			_, err = wf.Scan(cmd.Context(), domain.ScanArgs{Prefixes: scanPrefixes(args)})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func scanPrefixes(args []string) []string {
	if len(args) > 0 {
		return args
	}

	prefixes := append([]string{}, viper.GetStringSlice(companionPrimaryKey)...)

	return append(prefixes, viper.GetStringSlice(companionSecondaryKey)...)
}
