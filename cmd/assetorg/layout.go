package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vmunix/assetorg/internal/organizer"
)

// layoutView is the structured form of the built-in tables.
type layoutView struct {
	Folders    []string                     `json:"folders" yaml:"folders"`
	Extensions []organizer.ExtensionMapping `json:"extensions" yaml:"extensions"`
	Plugins    []string                     `json:"plugins" yaml:"plugins"`
	MetaSuffix string                       `json:"meta_suffix" yaml:"meta_suffix"`
}

func newLayoutCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the destination folders, extension table and plugin folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			view := layoutView{
				Folders:    organizer.Folders(),
				Extensions: organizer.Extensions(),
				Plugins:    organizer.PluginDirs(),
				MetaSuffix: organizer.MetaSuffix,
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return printStructured(out, output, view)
			}

			rows := make([]table.Row, 0, len(view.Extensions))
			for _, m := range view.Extensions {
				rows = append(rows, table.Row{m.Extension, m.Folder})
			}
			fmt.Fprintln(out, renderTable(out, table.Row{"EXTENSION", "FOLDER"}, rows))
			fmt.Fprintf(out, "\nPlugin folders (moved to %s): %s\n", organizer.FolderPlugins, strings.Join(view.Plugins, ", "))
			fmt.Fprintf(out, "Companion files: <name>%s\n", view.MetaSuffix)
			fmt.Fprintf(out, "Folders created: %s\n", strings.Join(view.Folders, ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json, yaml")
	return cmd
}
