// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

var (
	// ErrInvalidPath indicates a path that cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInsecureFilePermissions indicates a file other users can write.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
	// ErrReadableByOthers indicates a file other users can read.
	ErrReadableByOthers = errors.New("file is readable by other users")
)

// ResolvePath returns path as a clean absolute path with symbolic links
// resolved. A path that does not exist yet is returned cleaned.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	abs = filepath.Clean(abs)

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}
	return resolved, nil
}

// ValidateFilePermissions returns ErrInsecureFilePermissions if path is
// group- or world-writable. The check is skipped on Windows, which uses ACLs.
func ValidateFilePermissions(path string) error {
	return checkMode(path, 0o022, ErrInsecureFilePermissions)
}

// ValidateSecretFilePermissions returns ErrReadableByOthers if path can be
// read by its group or by everyone. Use it for files holding credentials.
func ValidateSecretFilePermissions(path string) error {
	return checkMode(path, 0o044, ErrReadableByOthers)
}

func checkMode(path string, mask fs.FileMode, sentinel error) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Mode().Perm()&mask != 0 {
		return fmt.Errorf("%w: %s has mode %04o", sentinel, path, info.Mode().Perm())
	}
	return nil
}
