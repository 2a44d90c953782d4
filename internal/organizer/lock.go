package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultLockDir returns the directory holding per-root lock files.
// Locks live outside the root so they never show up among its entries.
func DefaultLockDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(cacheDir, "assetorg", "locks"), nil
}

// LockPath returns the lock file used for root inside dir.
func LockPath(dir, root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(dir, filepath.Base(root)+"-"+hex.EncodeToString(sum[:6])+".lock")
}

// acquireLock takes the lock for root without blocking.
// Returns ErrLocked if another run holds it.
func acquireLock(dir, root string) (*flock.Flock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fileLock := flock.New(LockPath(dir, root))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fileLock, nil
}
