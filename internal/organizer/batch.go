package organizer

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Batch organizes several independent roots with at most jobs running at once
// (jobs <= 0 means no limit). Each root gets its own sequential pass built from
// base with Root replaced. Duplicate roots, including symlinked aliases of
// one folder, are organized once.
//
// The first failing root cancels the context seen by the others, which stop
// before their next entry. Reports are returned in the order of the
// deduplicated roots; a root that never started has a nil report.
func Batch(ctx context.Context, base Options, roots []string, jobs int) ([]*Report, error) {
	unique := dedupeRoots(roots)
	reports := make([]*Report, len(unique))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, root := range unique {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			opts := base
			opts.Root = root
			report, err := New(opts).Organize(ctx)
			reports[i] = report
			if err != nil {
				return fmt.Errorf("%s: %w", root, err)
			}
			return nil
		})
	}

	return reports, g.Wait()
}

func dedupeRoots(roots []string) []string {
	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		key := filepath.Clean(root)
		if canon, err := canonicalRoot(root); err == nil {
			key = canon
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, root)
	}
	return out
}
