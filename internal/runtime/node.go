package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NodeBinary is the executable name of the Node.js runtime.
const NodeBinary = "node"

var (
	// ErrRuntimeNotFound means the runtime binary is not on PATH.
	ErrRuntimeNotFound = errors.New("runtime not found")
	// ErrVersionUnparseable means the runtime reported a version string
	// that is not a semantic version.
	ErrVersionUnparseable = errors.New("version string could not be parsed")
	// ErrVersionTooOld means the runtime is below the required minimum.
	ErrVersionTooOld = errors.New("version below required minimum")
)

// NodeVersion runs `node --version` and returns the trimmed output, e.g.
// "v20.11.1".
func NodeVersion(ctx context.Context, r Runner) (string, error) {
	if _, err := r.LookPath(NodeBinary); err != nil {
		return "", fmt.Errorf("%s: %w", NodeBinary, ErrRuntimeNotFound)
	}
	out, err := r.Run(ctx, "", NodeBinary, "--version")
	if err != nil {
		return "", fmt.Errorf("probing %s version: %w", NodeBinary, err)
	}
	if !out.Success() {
		return "", fmt.Errorf("%s --version exited with code %d", NodeBinary, out.ExitCode)
	}
	return strings.TrimSpace(out.Stdout), nil
}

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, ErrVersionUnparseable)
	}
	return v, nil
}

// CheckMinVersion parses installed and compares it against minimum. It
// returns ErrVersionUnparseable when installed cannot be parsed and
// ErrVersionTooOld when it is older than minimum. An invalid minimum is a
// configuration error and is reported without either sentinel.
func CheckMinVersion(installed, minimum string) (*semver.Version, error) {
	floor, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(minimum), "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid minimum version %q: %v", minimum, err)
	}
	v, err := ParseVersion(installed)
	if err != nil {
		return nil, err
	}
	if v.LessThan(floor) {
		return v, fmt.Errorf("%s is older than %s: %w", v, floor, ErrVersionTooOld)
	}
	return v, nil
}
