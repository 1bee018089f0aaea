// Package storage defines the file-system abstraction used for the term
// data directory and the generated site output.
package storage

import "time"

// FileInfo describes one data file found by List.
type FileInfo struct {
	// Path is relative to the provider root.
	Path     string
	Checksum string
	ModTime  time.Time
}

// Provider is the interface for file operations under a fixed root.
type Provider interface {
	// List returns metadata for every file directly under the root whose
	// name has the given extension (e.g. ".json"), sorted by path.
	List(ext string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root),
	// creating parent directories as needed.
	Write(path string, content []byte) error
	// Root returns the absolute root directory.
	Root() string
}
