// Package ioutils provides file system and image processing helpers for
// collection-gen.
//
// File helpers cover the little the pipelines need: directory creation
// (idempotent across reruns), plain writes, and the existence checks used
// for skip-on-resume decisions.
package ioutils

import (
	"os"
)

// EnsureDir creates a directory and all parent directories if they don't
// exist. Creating an already-existing directory is not an error, so the
// call is safe to repeat across runs.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file with mode 0644, truncating any existing
// file at that path.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// FileExists reports whether a regular file exists at path.
//
// Existence is the only state the downloader tracks about a cached image;
// no size or checksum comparison is done.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
