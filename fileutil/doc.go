// Package fileutil writes the files the baseurl command creates, such as the
// sample config written by "baseurl config init".
//
// WriteAtomic stages data in a temp file next to the target, syncs it, and
// renames it into place, retrying the rename a few times with a short
// backoff. WriteNew adds the guard used for user-owned files: it creates the
// parent directory with DirPermission and refuses to replace a file that is
// already there, returning an error that wraps ErrExists.
package fileutil
