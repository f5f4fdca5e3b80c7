package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Skeleton is the feature-oriented source tree: a root directory holding
// groups, each with the same kind of conventional subfolders.
type Skeleton struct {
	Root   string          `yaml:"root"`
	Groups []SkeletonGroup `yaml:"groups"`
}

// SkeletonGroup is one grouping under the skeleton root.
type SkeletonGroup struct {
	Path string   `yaml:"path"`
	Dirs []string `yaml:"dirs"`
}

// Dirs returns every directory of the skeleton, slash-separated and
// relative to the project root, parents before children.
func (s Skeleton) Dirs() []string {
	dirs := []string{s.Root}
	for _, g := range s.Groups {
		base := path.Join(s.Root, g.Path)
		dirs = append(dirs, base)
		for _, d := range g.Dirs {
			dirs = append(dirs, path.Join(base, d))
		}
	}
	return dirs
}

func (s Skeleton) validate() error {
	if err := validateRelPath(s.Root); err != nil {
		return fmt.Errorf("skeleton root: %w", err)
	}
	for _, g := range s.Groups {
		if err := validateRelPath(g.Path); err != nil {
			return fmt.Errorf("skeleton group: %w", err)
		}
		for _, d := range g.Dirs {
			if err := validateRelPath(d); err != nil {
				return fmt.Errorf("skeleton group %s: %w", g.Path, err)
			}
		}
	}
	return nil
}

// SkeletonResult reports what BuildSkeleton did.
type SkeletonResult struct {
	Status  Status
	Created []string // directories created, slash-separated
}

// BuildSkeleton creates the skeleton under base. If the skeleton root
// already exists nothing is created. Otherwise every directory is attempted;
// directories that cannot be created are reported together in the error and
// the ones already created are kept.
func BuildSkeleton(base string, s Skeleton) (SkeletonResult, error) {
	root := filepath.Join(base, filepath.FromSlash(s.Root))
	if _, err := os.Lstat(root); err == nil {
		return SkeletonResult{Status: StatusExisted}, nil
	}

	result := SkeletonResult{Status: StatusCreated}
	var errs []error
	for _, rel := range s.Dirs() {
		dir := filepath.Join(base, filepath.FromSlash(rel))
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("%s: %w", rel, ErrNotMaterialized))
			continue
		}
		result.Created = append(result.Created, rel)
	}
	return result, errors.Join(errs...)
}
