// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File permissions
const (
	// DirPermission is used for directories created on behalf of a file (rwxr-x---)
	DirPermission = 0o750
	// FilePermission is the default for written files (rw-r--r--)
	FilePermission = 0o644
)

// ErrExists is returned by WriteNew when the target is already present.
var ErrExists = errors.New("already exists")

const renameAttempts = 5

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// WriteAtomic writes data to path through a temp file in the same directory,
// so readers see either the old contents or the new, never a partial file.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close() }()

	fail := func(format string, err error) error {
		_ = os.Remove(tmpPath)
		return fmt.Errorf(format, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fail("failed to set file permissions: %w", err)
	}

	// Rename can fail transiently on some platforms while another process
	// holds the target open.
	for attempt := 1; ; attempt++ {
		err = os.Rename(tmpPath, path)
		if err == nil || attempt == renameAttempts {
			break
		}
		time.Sleep(time.Duration(20*attempt) * time.Millisecond)
	}
	if err != nil {
		return fail("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteNew creates path and its parent directory and writes data to it. It
// returns an error wrapping ErrExists instead of replacing an existing file.
func WriteNew(path string, data []byte) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%s %w", path, ErrExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := EnsureParent(path); err != nil {
		return err
	}
	return WriteAtomic(path, data, FilePermission)
}
