package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "assetorg",
		Short: "Sort a Unity asset folder into standard subfolders",
		Long: `assetorg - sort a Unity asset folder into standard subfolders

Files are moved by extension into Animations, Materials, Scripts,
Settings and Sounds, vendored plugin folders are moved under Plugins,
and every asset keeps its .meta file alongside it.

Only the immediate children of the folder are considered.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default: discovered assetorg.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("assetorg {{.Version}}\n")

	rootCmd.AddCommand(
		newOrganizeCmd(flags),
		newLayoutCmd(),
		newConfigCmd(flags),
	)
	return rootCmd
}
