package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"doer/internal/logging"
)

const lockFileName = ".lock"

// withContextLock runs fn while holding the advisory lock of the context
// directory. Other doer processes writing the same context wait for it.
func withContextLock(dir string, fn func() error) error {
	path := filepath.Join(dir, lockFileName)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer func() {
		if err := unlockFile(file); err != nil {
			logging.Logger.Warn("Failed to release lock", "path", path, "error", err)
		}
	}()

	return fn()
}
