// Package models defines the domain types shared across notepress packages.
package models

import "time"

// NoteFile describes a note found in a vault folder.
type NoteFile struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"` // relative to the storage root
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post describes one converted note written to the blog.
type Post struct {
	Source     string   `json:"source"`
	Slug       string   `json:"slug"`
	Path       string   `json:"path"` // relative to the project root
	Checksum   string   `json:"checksum"`
	Images     []string `json:"images,omitempty"`
	Unresolved []string `json:"unresolved,omitempty"`
}
