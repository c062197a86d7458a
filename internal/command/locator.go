package command

import (
	"errors"
	"os"
	"path/filepath"

	"golemstat/pkg/logging"
)

const locatorSubsystem = "Locator"

// Companion executable names.
const (
	DaemonBin   = "yagna"
	ProviderBin = "ya-provider"
)

// symlinkHopLimit bounds symlink resolution when locating the running
// binary. Fixed constant, a safety valve against cyclic or pathological
// filesystem links.
const symlinkHopLimit = 5

// Package-level indirections for test stubbing.
var (
	osExecutable = os.Executable
	osReadlink   = os.Readlink
	userHomeDir  = os.UserHomeDir
)

// ExecutableSet knows where the companion binaries live. If both were
// found next to the running binary it qualifies every program with that
// directory; otherwise it degrades to bare program names, relying on
// the invoking shell's PATH. It never holds a partial mix of
// located/unlocated binaries.
type ExecutableSet struct {
	baseDir string
}

// Locate resolves the on-disk directory containing the companion
// binaries. It starts from the running tool's own binary path, follows
// up to symlinkHopLimit symlink hops, and takes the parent directory of
// the final resolved path as the candidate base. A LocationError is
// returned only when the tool's own path cannot be determined at all;
// missing companions are not an error, they trigger the PATH fallback.
func Locate() (*ExecutableSet, error) {
	exe, err := osExecutable()
	if err != nil {
		return nil, &LocationError{Reason: err}
	}
	return locateFrom(exe)
}

func locateFrom(exe string) (*ExecutableSet, error) {
	resolved := exe
	for i := 0; i < symlinkHopLimit; i++ {
		target, err := osReadlink(resolved)
		if err != nil {
			break
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(resolved), target)
		}
		resolved = target
	}

	baseDir := filepath.Dir(resolved)
	if baseDir == "" || baseDir == "." {
		return nil, &LocationError{Reason: errors.New("no parent directory for " + resolved)}
	}

	if !fileExists(filepath.Join(baseDir, DaemonBin)) || !fileExists(filepath.Join(baseDir, ProviderBin)) {
		logging.Debug(locatorSubsystem, "companions not found under %s, falling back to PATH", baseDir)
		return &ExecutableSet{}, nil
	}

	logging.Debug(locatorSubsystem, "using companion binaries from %s", baseDir)
	return &ExecutableSet{baseDir: baseDir}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// BaseDir returns the resolved companion directory, or "" when the set
// degraded to PATH-based resolution.
func (s *ExecutableSet) BaseDir() string {
	return s.baseDir
}

// Program returns the invocation path for a logical program name:
// qualified with the base directory when one was located, bare
// otherwise.
func (s *ExecutableSet) Program(name string) string {
	if s.baseDir != "" {
		return filepath.Join(s.baseDir, name)
	}
	return name
}
