package organizer

import (
	"path/filepath"
	"strings"
)

// ValidatePath ensures path is within root.
// Returns ErrPathTraversal if the path would escape it.
func ValidatePath(path, root string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)

	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if cleanPath != cleanRoot && !strings.HasPrefix(cleanPath, prefix) {
		return ErrPathTraversal
	}
	return nil
}

// canonicalRoot returns the absolute, symlink-free form of root, so every
// alias of one folder maps to the same lock and the same batch entry.
// Unresolvable links fall back to the absolute path.
func canonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// destination joins root, folder and name, refusing names that would leave folder.
func destination(root, folder, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", ErrPathTraversal
	}
	dir := filepath.Join(root, folder)
	dst := filepath.Join(dir, name)
	if err := ValidatePath(dst, dir); err != nil {
		return "", err
	}
	return dst, nil
}
