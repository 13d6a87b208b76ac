// Package cmd provides the root command and CLI setup for capres.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"capres.dev/pkg/capres/internal/adapter"
	"capres.dev/pkg/capres/internal/controller"
	"capres.dev/pkg/capres/internal/domain"
	m "capres.dev/pkg/capres/internal/model"
)

var fsAdapter adapter.FSAdapter
var settingsStore adapter.SettingsStore
var ui controller.UI

// workflow overrides the configured workflow when set. Commands build one
// from the loaded configuration otherwise.
var workflow domain.Workflow

// configFlag names an explicit configuration file.
var configFlag string

// anchorFlag is the directory relative paths in the configuration resolve against.
var anchorFlag string

// platformFlags lists the target platforms of a run.
var platformFlags []string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(os.Stderr, controller.IsTTY(os.Stderr))
	fsAdapter = adapter.NewLocalFSAdapter()
	settingsStore = adapter.NewSettingsStore()
}

const rootLongDescription = `Capres decides at build time whether an optional native capability is
available on the host toolchain.

It probes a vendor SDK tree for its header, import libraries and runtime
library, emits the matching compile definitions and link settings, stages
the runtime library next to the binaries that load it, and discovers
optional third-party companion modules from their build descriptors.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capres",
		Short: "Optional capability resolver",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := readConfigFile(configFlag); err != nil {
				return err
			}

			configureLogger("", viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFlag, configFlagName, "c", "", "configuration file (default ./"+configFileName+")")

	cmd.PersistentFlags().StringVarP(&anchorFlag, anchorFlagName, "a", viper.GetString(anchorKey), "directory relative configuration paths resolve against (default: the config file's directory)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(anchorFlagName), anchorKey)

	cmd.PersistentFlags().StringSliceVarP(&platformFlags, platformFlagName, "p", viper.GetStringSlice(platformsKey), "target platform (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(platformFlagName), platformsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// loadWorkflow returns the workflow for this invocation together with the
// configuration it was built from.
func loadWorkflow() (domain.Workflow, runConfig, error) {
	cfg, err := loadRunConfig(fsAdapter)
	if err != nil {
		return nil, runConfig{}, err
	}

	if workflow != nil {
		return workflow, cfg, nil
	}

	return newWorkflow(cfg, fsAdapter, ui), cfg, nil
}

// parsePlatforms normalises platform names, dropping blanks and duplicates.
// Known platforms are matched case-insensitively.
func parsePlatforms(values []string) []m.Platform {
	known := []m.Platform{m.PlatformWin64, m.PlatformLinux, m.PlatformMac}
	platforms := make([]m.Platform, 0, len(values))
	seen := make(map[m.Platform]bool, len(values))

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		platform := m.Platform(value)

		for _, k := range known {
			if strings.EqualFold(value, string(k)) {
				platform = k
				break
			}
		}

		if seen[platform] {
			continue
		}

		seen[platform] = true
		platforms = append(platforms, platform)
	}

	return platforms
}
