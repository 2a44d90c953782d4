// Package organizer sorts the immediate children of an asset folder into
// fixed destination folders by extension and moves vendored plugin folders
// under Plugins. Each moved asset takes its .meta companion along.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Options configures an Organizer.
type Options struct {
	// Root is the folder to organize. Relative paths resolve against the working directory.
	Root string

	// Exclude lists extra entry names that are never touched.
	Exclude []string

	// Rollback undoes completed moves when the run fails.
	Rollback bool

	// LockDir holds the per-root lock file. Empty disables locking.
	LockDir string

	Mover    Mover
	Logger   *slog.Logger
	OnAction func(Action)
}

// Organizer performs a single organizing pass over a root folder.
type Organizer struct {
	opts   Options
	mover  Mover
	logger *slog.Logger
}

// New creates an Organizer.
func New(opts Options) *Organizer {
	mover := opts.Mover
	if mover == nil {
		mover = OSMover{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Organizer{opts: opts, mover: mover, logger: logger}
}

// journalEntry records a completed move so it can be reversed.
type journalEntry struct {
	action Action
	src    string
}

// run holds the state of one Organize call.
type run struct {
	*Organizer
	ctx     context.Context
	root    string
	log     *slog.Logger
	report  *Report
	exclude map[string]struct{}
	moved   map[string]struct{}
	journal []journalEntry
}

// Organize provisions the destination folders and relocates every matching
// entry of the root. The first failure stops the run; the returned report
// always describes what was done.
func (o *Organizer) Organize(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Root:      o.opts.Root,
		StartedAt: time.Now(),
	}
	err := o.organize(ctx, report)
	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		report.Error = err.Error()
	}
	return report, err
}

func (o *Organizer) organize(ctx context.Context, report *Report) error {
	root, err := filepath.Abs(o.opts.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	report.Root = root

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootNotDirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	if o.opts.LockDir != "" {
		key, err := canonicalRoot(root)
		if err != nil {
			return fmt.Errorf("resolve root: %w", err)
		}
		lock, err := acquireLock(o.opts.LockDir, key)
		if err != nil {
			return err
		}
		defer func() { _ = lock.Unlock() }()
	}

	r := &run{
		Organizer: o,
		ctx:       ctx,
		root:      root,
		log:       o.logger.With("root", root, "run", report.RunID),
		report:    report,
		exclude:   selfNames(root, o.opts.Exclude),
		moved:     make(map[string]struct{}),
	}

	r.log.Debug("organize started")
	err = r.execute()
	if err == nil {
		r.log.Info("organize complete", "created", len(report.Created), "moved", len(report.Moves), "skipped", len(report.Skipped))
		return nil
	}

	r.log.Error("organize failed", "error", err, "moved", len(report.Moves))
	if !o.opts.Rollback {
		return err
	}
	if rbErr := r.rollback(); rbErr != nil {
		return errors.Join(err, fmt.Errorf("%w: %w", ErrRollbackFailed, rbErr))
	}
	report.RolledBack = true
	return err
}

func (r *run) execute() error {
	if err := r.provision(); err != nil {
		return err
	}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		return fmt.Errorf("list root: %w", err)
	}

	for _, entry := range entries {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if err := r.visit(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// provision creates any missing destination folder.
func (r *run) provision() error {
	for _, folder := range folders {
		path := filepath.Join(r.root, folder)
		info, err := os.Stat(path)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("create folder %s: %w", folder, ErrDestinationExists)
			}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat folder %s: %w", folder, err)
		}

		if err := os.Mkdir(path, 0o755); err != nil {
			return fmt.Errorf("create folder %s: %w", folder, err)
		}
		r.report.Created = append(r.report.Created, folder)
		r.log.Info("created folder", "folder", folder)
		r.emit(Action{Kind: ActionCreateFolder, Name: folder, Folder: folder, Path: path})
	}
	return nil
}

func (r *run) visit(name string) error {
	if _, ok := r.exclude[name]; ok {
		r.report.Excluded = append(r.report.Excluded, name)
		r.log.Debug("excluded", "name", name)
		return nil
	}
	if _, ok := r.moved[name]; ok {
		return nil
	}

	path := filepath.Join(r.root, name)
	info, err := os.Stat(path)
	if err != nil {
		if _, lerr := os.Lstat(path); lerr != nil {
			// Gone since the listing was taken.
			return nil
		}
		r.skip(name, false, fmt.Sprintf("unreadable: %v", err))
		return nil
	}

	switch {
	case info.Mode().IsRegular():
		return r.visitFile(name)
	case info.IsDir():
		return r.visitDir(name)
	default:
		r.skip(name, false, "")
		return nil
	}
}

func (r *run) visitFile(name string) error {
	folder, ok := FolderFor(name)
	if !ok {
		r.skip(name, false, fileHint(name))
		return nil
	}
	if err := r.move(ActionMoveFile, name, folder); err != nil {
		return err
	}
	return r.moveCompanion(name, folder)
}

func (r *run) visitDir(name string) error {
	if isFolder(name) {
		return nil
	}
	if !IsPluginDir(name) {
		r.skip(name, true, dirHint(name))
		return nil
	}
	// The folder's own .meta is an unrecognized file and stays at the root.
	return r.move(ActionMovePlugin, name, FolderPlugins)
}

// moveCompanion moves name's .meta file into folder if it exists.
func (r *run) moveCompanion(name, folder string) error {
	meta := name + MetaSuffix
	if _, err := os.Lstat(filepath.Join(r.root, meta)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", meta, err)
	}
	return r.move(ActionMoveMeta, meta, folder)
}

func (r *run) move(kind ActionKind, name, folder string) error {
	dst, err := destination(r.root, folder, name)
	if err != nil {
		return fmt.Errorf("move %s to %s: %w", name, folder, err)
	}
	src := filepath.Join(r.root, name)

	if err := r.mover.Move(src, dst); err != nil {
		return fmt.Errorf("move %s to %s: %w", name, folder, err)
	}

	action := Action{Kind: kind, Name: name, Folder: folder, Path: dst}
	r.moved[name] = struct{}{}
	r.journal = append(r.journal, journalEntry{action: action, src: src})
	r.report.Moves = append(r.report.Moves, action)
	r.log.Info("moved", "kind", kind, "name", name, "folder", folder)
	r.emit(action)
	return nil
}

// rollback reverses completed moves newest first, then removes the folders
// this run created. It keeps going past failures and returns them joined.
func (r *run) rollback() error {
	var errs []error
	for i := len(r.journal) - 1; i >= 0; i-- {
		e := r.journal[i]
		if err := r.mover.Move(e.action.Path, e.src); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", e.action.Name, err))
			continue
		}
		r.log.Info("restored", "name", e.action.Name, "folder", e.action.Folder)
		r.emit(Action{Kind: ActionUndoMove, Name: e.action.Name, Folder: e.action.Folder, Path: e.src})
	}

	for i := len(r.report.Created) - 1; i >= 0; i-- {
		folder := r.report.Created[i]
		path := filepath.Join(r.root, folder)
		if err := os.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("remove folder %s: %w", folder, err))
			continue
		}
		r.emit(Action{Kind: ActionRemoveFolder, Name: folder, Folder: folder, Path: path})
	}
	return errors.Join(errs...)
}

func (r *run) skip(name string, isDir bool, hint string) {
	r.report.Skipped = append(r.report.Skipped, Skipped{Name: name, IsDir: isDir, Hint: hint})
	if hint != "" {
		r.log.Warn("left in place", "name", name, "hint", hint)
	}
}

func (r *run) emit(a Action) {
	if r.opts.OnAction != nil {
		r.opts.OnAction(a)
	}
}

func isFolder(name string) bool {
	for _, f := range folders {
		if f == name {
			return true
		}
	}
	return false
}

// selfNames returns the entry names a run never touches: the legacy script,
// the running executable when it lives in root, their companions, and extra.
func selfNames(root string, extra []string) map[string]struct{} {
	names := []string{LegacyScriptName}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		if sameDir(filepath.Dir(exe), root) {
			names = append(names, filepath.Base(exe))
		}
	}
	names = append(names, extra...)

	out := make(map[string]struct{}, len(names)*2)
	for _, n := range names {
		out[n] = struct{}{}
		out[n+MetaSuffix] = struct{}{}
	}
	return out
}

func sameDir(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
