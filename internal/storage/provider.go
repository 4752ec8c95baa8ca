// Package storage defines the file-system abstraction used for both the
// source vault and the blog project tree.
package storage

import (
	"io"
	"io/fs"

	"github.com/starford/notepress/internal/models"
)

// Provider is the interface for file operations relative to a root directory.
type Provider interface {
	// Root returns the absolute root directory.
	Root() string
	// Stat returns file info for path (relative to root).
	Stat(path string) (fs.FileInfo, error)
	// List returns the regular files directly inside dir whose names end
	// in ext, sorted by name. Subdirectories are not descended into.
	List(dir, ext string) ([]models.NoteFile, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Open opens the file at path for streaming reads.
	Open(path string) (io.ReadCloser, error)
	// Write atomically writes content to path, creating parent directories.
	Write(path string, content []byte) error
	// Copy atomically writes everything read from src to path, creating
	// parent directories.
	Copy(path string, src io.Reader) error
	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}
