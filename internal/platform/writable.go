package platform

import (
	"fmt"
	"os"
)

const writeProbePattern = ".rnsetup-write-check-*"

// CheckWritable verifies that dir is an existing directory in which new files
// can be created. The probe file is removed before returning.
func CheckWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, writeProbePattern)
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("removing write probe %s: %w", name, err)
	}
	return nil
}
