package organizer

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "create parent of %s", name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", name)
	return path
}

func mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755), "mkdir %s", name)
	return path
}

// tree lists every path under root, relative and slash-separated, with
// directories suffixed by "/".
func tree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err, "walk %s", root)
	sort.Strings(out)
	return out
}

func newTestOrganizer(t *testing.T, root string, mutate ...func(*Options)) *Organizer {
	t.Helper()
	opts := Options{
		Root:    root,
		LockDir: t.TempDir(),
		Logger:  testLogger(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	return New(opts)
}
