package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/assetorg/internal/config"
)

func newConfigCmd(global *globalFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configTestCmd := &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates the config file syntax, values and environment variable substitution without organizing anything.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.configPath
			if len(args) > 0 {
				path = args[0]
			}
			return runConfigTest(cmd.OutOrStdout(), path)
		},
	}

	var force, resolved bool
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Writes a commented starter config to path (default ./assetorg.toml).

With --resolved the effective configuration is written instead: the
discovered or --config file with defaults applied and environment
variables substituted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "assetorg.toml"
			if len(args) > 0 {
				path = args[0]
			}
			var cfg *config.Config
			if resolved {
				var err error
				if cfg, _, err = config.Resolve(global.configPath); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			return runConfigInit(cmd.OutOrStdout(), path, force, cfg)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolVar(&resolved, "resolved", false, "Write the effective configuration instead of the template")

	configCmd.AddCommand(configTestCmd, configInitCmd)
	return configCmd
}

func runConfigTest(w io.Writer, path string) error {
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

// runConfigInit writes cfg to path, or the starter template when cfg is nil.
func runConfigInit(w io.Writer, path string, force bool, cfg *config.Config) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}
	write := config.WriteDefault
	if cfg != nil {
		write = cfg.Write
	}
	if err := write(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Log:       %s (%s)\n", cfg.Log.Level, cfg.Log.Format)

	root := cfg.Organizer.Root
	if root == "" {
		root = "(working directory)"
	}
	fmt.Fprintf(w, "  Root:      %s\n", root)

	lock := "on"
	if !cfg.Organizer.LockEnabled() {
		lock = "off"
	}
	fmt.Fprintf(w, "  Lock:      %s\n", lock)
	fmt.Fprintf(w, "  Rollback:  %s\n", strconv.FormatBool(cfg.Organizer.Rollback))
	fmt.Fprintf(w, "  Jobs:      %d\n", cfg.Organizer.Jobs)
	if len(cfg.Organizer.Exclude) > 0 {
		fmt.Fprintf(w, "  Exclude:   %s\n", strings.Join(cfg.Organizer.Exclude, ", "))
	}
}
