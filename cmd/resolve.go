package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"capres.dev/pkg/capres/internal/adapter"
	"capres.dev/pkg/capres/internal/domain"
	m "capres.dev/pkg/capres/internal/model"
)

var formatFlag string
var writeFlag string
var noStageFlag bool

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve optional capabilities and emit build settings",
		Long: `Probe the SDK for every target platform, decide the feature flags and
link settings, stage the runtime library when the SDK is complete, and emit
the resulting build settings as YAML or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, cfg, err := loadWorkflow()
			if err != nil {
				return err
			}

			platforms := parsePlatforms(viper.GetStringSlice(platformsKey))
			if len(platforms) == 0 {
				return errors.New("no target platform given")
			}

			args := domain.ResolveArgs{
				Platforms: platforms,
				Stage:     viper.GetBool(stageEnabledKey) && !noStageFlag,
			}

			if cfg.Project != "" {
				args.ProjectBinaries = []m.Path{cfg.Project}
			}

			settings, err := wf.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}

			return emitSettings(cmd, settings)
		},
	}

	configureResolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func configureResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(outputFormatKey), "output format (yaml or json)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), outputFormatKey)

	cmd.Flags().StringVarP(&writeFlag, writeFlagName, "w", viper.GetString(outputFileKey), "write settings to a file instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(writeFlagName), outputFileKey)

	cmd.Flags().BoolVar(&noStageFlag, noStageFlagName, false, "do not stage runtime libraries")
}

// emitSettings writes settings to the configured file, or to the command
// output when no file is set. An explicit format wins over the file extension.
func emitSettings(cmd *cobra.Command, settings []m.BuildSettings) error {
	format, err := adapter.ParseFormat(viper.GetString(outputFormatKey))
	if err != nil {
		return err
	}

	path := strings.TrimSpace(viper.GetString(outputFileKey))
	if path == "" {
		return settingsStore.Encode(cmd.OutOrStdout(), format, settings)
	}

	if !cmd.Flags().Changed(formatFlagName) {
		format = adapter.FormatForPath(m.Path(path), format)
	}

	if err := settingsStore.Save(m.Path(path), format, settings); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	slog.Info("build settings written", "file", path, "format", format)

	return nil
}
