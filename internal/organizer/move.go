// internal/organizer/move.go
package organizer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

//go:generate mockgen -destination=mocks/mock_mover.go -package=mocks github.com/vmunix/assetorg/internal/organizer Mover

// Mover relocates a file or directory.
type Mover interface {
	// Move renames src to dst. It fails with ErrDestinationExists if dst exists.
	Move(src, dst string) error
}

// OSMover moves entries on the local filesystem.
type OSMover struct{}

// Move renames src to dst.
// Regular files are copied and removed when src and dst are on different devices.
func (OSMover) Move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return ErrDestinationExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat destination: %w", ErrMoveFailed, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EXDEV) {
		return moveAcrossDevices(src, dst)
	}
	return fmt.Errorf("%w: %w", ErrMoveFailed, err)
}

func moveAcrossDevices(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("%w: stat source: %w", ErrMoveFailed, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s crosses devices and is not a regular file", ErrMoveFailed, src)
	}

	if _, err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("%w: remove source: %w", ErrMoveFailed, err)
	}
	return nil
}

// copyFile copies src to dst, which must not exist.
func copyFile(src, dst string, perm fs.FileMode) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %w", ErrMoveFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, ErrDestinationExists
		}
		return 0, fmt.Errorf("%w: create destination: %w", ErrMoveFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	size, err := io.Copy(dstFile, srcFile)
	if err != nil {
		// Clean up partial file on error
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %w", ErrMoveFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: sync: %w", ErrMoveFailed, err)
	}

	return size, nil
}
