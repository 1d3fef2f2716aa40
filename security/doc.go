// Package security checks the files the baseurl command reads its settings
// from.
//
// The config file may hold named base URLs with embedded credentials, so the
// command warns when that file is writable by other users
// (ValidateFilePermissions) and, when it contains passwords, when it is
// readable by them (ValidateSecretFilePermissions). Both checks return
// sentinel errors that callers test with errors.Is and are no-ops on
// Windows.
//
// ResolvePath turns a user-supplied path into a clean absolute path with
// symbolic links resolved, so log messages name the file actually read.
package security
