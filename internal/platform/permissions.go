package platform

import (
	"fmt"
	"os"
	"runtime"
)

// ApplyMode sets the permission bits of a freshly written file so they do
// not depend on the process umask. Windows has no Unix permission bits, so
// it is a no-op there.
func ApplyMode(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.Mode().Perm() == mode.Perm() {
		return nil
	}
	if err := os.Chmod(path, mode.Perm()); err != nil {
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}
	return nil
}
