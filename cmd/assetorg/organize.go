package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vmunix/assetorg/internal/config"
	"github.com/vmunix/assetorg/internal/organizer"
)

type organizeFlags struct {
	rollback bool
	noLock   bool
	jobs     int
	output   string
}

func newOrganizeCmd(global *globalFlags) *cobra.Command {
	flags := &organizeFlags{}

	cmd := &cobra.Command{
		Use:   "organize [root...]",
		Short: "Organize one or more asset folders",
		Long: `Creates the standard subfolders and moves every recognized file and plugin
folder of each root into place, together with its .meta file.

Without arguments the configured root is used, or the working directory.
This differs from the organize_assets.py script, which always organized the
folder it was saved in; run assetorg from that folder, or pass it as an
argument, to get the same result.

The first failure stops the run; with --rollback the moves already made
are undone first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, args, global, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.rollback, "rollback", false, "Undo completed moves if the run fails")
	cmd.Flags().BoolVar(&flags.noLock, "no-lock", false, "Do not take the per-root lock")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "Roots organized at once (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputText, "Output format: text, json, yaml")
	return cmd
}

func runOrganize(cmd *cobra.Command, args []string, global *globalFlags, flags *organizeFlags) error {
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	cfg, _, err := config.Resolve(global.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if global.logLevel != "" {
		level = global.logLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)

	roots, err := resolveRoots(args, cfg.Organizer.Root)
	if err != nil {
		return err
	}

	var lockDir string
	if cfg.Organizer.LockEnabled() && !flags.noLock {
		lockDir = cfg.Organizer.LockDir
		if lockDir == "" {
			if lockDir, err = organizer.DefaultLockDir(); err != nil {
				return err
			}
		}
	}

	jobs := cfg.Organizer.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = flags.jobs
	}

	out := cmd.OutOrStdout()
	text := flags.output == outputText
	p := &progressPrinter{w: out, multi: len(roots) > 1}

	base := organizer.Options{
		Exclude:  cfg.Organizer.Exclude,
		Rollback: cfg.Organizer.Rollback || flags.rollback,
		LockDir:  lockDir,
		Logger:   logger,
	}
	if text {
		for _, root := range roots {
			fmt.Fprintf(out, "Running organization in: %s\n", root)
		}
		base.OnAction = p.action
	}

	reports, runErr := organizer.Batch(cmd.Context(), base, roots, jobs)

	if !text {
		var done []*organizer.Report
		for _, r := range reports {
			if r != nil {
				done = append(done, r)
			}
		}
		if err := printStructured(out, flags.output, done); err != nil {
			return err
		}
		return runErr
	}

	if runErr != nil {
		for _, r := range reports {
			if r != nil && r.RolledBack {
				fmt.Fprintf(out, "Rolled back changes in %s\n", r.Root)
			}
		}
		return runErr
	}

	for _, r := range reports {
		if r != nil {
			printSummary(out, r, len(reports) > 1)
		}
	}
	fmt.Fprintln(out, "\nOrganization complete!")
	fmt.Fprintf(out, "You may now delete the '%[1]s' and '%[1]s%[2]s' files.\n", selfName(), organizer.MetaSuffix)
	return nil
}

// resolveRoots returns args, or the configured root, or the working directory.
func resolveRoots(args []string, configured string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if configured != "" {
		return []string{configured}, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return []string{wd}, nil
}

// progressPrinter prints one line per action. Batch runs roots concurrently.
type progressPrinter struct {
	mu    sync.Mutex
	w     io.Writer
	multi bool
}

func (p *progressPrinter) action(a organizer.Action) {
	line := describeAction(a)
	if line == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.multi {
		fmt.Fprintf(p.w, "[%s] %s\n", rootOf(a), line)
		return
	}
	fmt.Fprintln(p.w, line)
}

func describeAction(a organizer.Action) string {
	switch a.Kind {
	case organizer.ActionCreateFolder:
		return fmt.Sprintf("Creating directory: %s", a.Path)
	case organizer.ActionMoveFile:
		return fmt.Sprintf("Moving file '%s' to '%s'...", a.Name, a.Folder)
	case organizer.ActionMoveMeta:
		return fmt.Sprintf("Moving meta file '%s' to '%s'...", a.Name, a.Folder)
	case organizer.ActionMovePlugin:
		return fmt.Sprintf("Moving plugin folder '%s' to '%s'...", a.Name, a.Folder)
	case organizer.ActionUndoMove:
		return fmt.Sprintf("Restoring '%s' from '%s'...", a.Name, a.Folder)
	case organizer.ActionRemoveFolder:
		return fmt.Sprintf("Removing directory: %s", a.Path)
	}
	return ""
}

func rootOf(a organizer.Action) string {
	switch a.Kind {
	case organizer.ActionCreateFolder, organizer.ActionRemoveFolder, organizer.ActionUndoMove:
		return filepath.Dir(a.Path)
	}
	return filepath.Dir(filepath.Dir(a.Path))
}

func printSummary(w io.Writer, r *organizer.Report, withRoot bool) {
	fmt.Fprintln(w)
	if withRoot {
		fmt.Fprintf(w, "%s:\n", r.Root)
	}

	counts := r.CountByFolder()
	rows := make([]table.Row, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, table.Row{c.Folder, c.Moved})
	}
	fmt.Fprintln(w, renderTable(w, table.Row{"FOLDER", "MOVED"}, rows, 2))

	hints := r.Hints()
	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(w, "\nLeft in place:")
	for _, h := range hints {
		fmt.Fprintf(w, "  - %s: %s\n", h.Name, h.Hint)
	}
}

// selfName is the name users know this tool by.
func selfName() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Base(exe)
	}
	return "assetorg"
}
