// Package importer converts vault notes into blog posts: it rewrites the
// header and image embeds of each note and copies the embedded images.
package importer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/starford/notepress/internal/apperr"
	"github.com/starford/notepress/internal/checksum"
	"github.com/starford/notepress/internal/embed"
	"github.com/starford/notepress/internal/frontmatter"
	"github.com/starford/notepress/internal/models"
	"github.com/starford/notepress/internal/slug"
	"github.com/starford/notepress/internal/storage"
)

// Layout places the converted output inside the project tree.
type Layout struct {
	PostsDir   string   // relative to the project root
	ImagesDir  string   // relative to the project root
	ImageURL   string   // public URL prefix of ImagesDir
	SearchDirs []string // vault folders probed for embedded images
}

// DefaultLayout returns the layout of the blog project.
func DefaultLayout() Layout {
	return Layout{
		PostsDir:   filepath.Join("src", "content", "posts"),
		ImagesDir:  filepath.Join("public", "images", "posts"),
		ImageURL:   embed.DefaultPrefix,
		SearchDirs: DefaultSearchDirs,
	}
}

// Result holds the outcome of a batch run.
type Result struct {
	Converted int
	Failed    int
	Posts     []models.Post
}

// Total returns the number of notes processed.
func (r Result) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any note failed to convert.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Option configures an Importer.
type Option func(*Importer)

// WithClock overrides the clock used for the default post date.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) {
		im.now = now
	}
}

// Importer converts the notes of one vault folder into posts.
type Importer struct {
	vault    storage.Provider
	out      storage.Provider
	layout   Layout
	resolver *Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an importer reading from vault and writing into out.
func New(vault, out storage.Provider, layout Layout, logger *slog.Logger, opts ...Option) *Importer {
	im := &Importer{
		vault:    vault,
		out:      out,
		layout:   layout,
		resolver: NewResolver(vault, out, layout.ImagesDir, layout.SearchDirs, logger),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Run converts every note directly inside folder (relative to the vault).
// It returns apperr.ErrSourceNotFound, before writing anything, when the
// folder is missing. A folder without notes is not an error and writes
// nothing. Per-note failures are logged and counted, never returned.
func (im *Importer) Run(folder string) (Result, error) {
	var result Result

	info, err := im.vault.Stat(folder)
	if err != nil || !info.IsDir() {
		return result, fmt.Errorf("%w: %s", apperr.ErrSourceNotFound, filepath.Join(im.vault.Root(), folder))
	}

	notes, err := im.vault.List(folder, slug.Ext)
	if err != nil {
		return result, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		im.logger.Info("import: no markdown files to import", slog.String("folder", folder))
		return result, nil
	}

	if err := im.out.MkdirAll(im.layout.PostsDir); err != nil {
		return result, fmt.Errorf("create posts dir: %w", err)
	}
	if err := im.out.MkdirAll(im.layout.ImagesDir); err != nil {
		return result, fmt.Errorf("create images dir: %w", err)
	}

	im.logger.Info("import: importing notes",
		slog.String("folder", folder),
		slog.Int("count", len(notes)))

	for _, note := range notes {
		post, err := im.Convert(note)
		if err != nil {
			im.logger.Error("import: failed",
				slog.String("file", note.Name),
				slog.String("error", err.Error()))
			result.Failed++
			continue
		}
		im.logger.Info("import: converted",
			slog.String("file", note.Name),
			slog.String("post", post.Slug+slug.Ext))
		im.logger.Debug("import: post written",
			slog.String("path", post.Path),
			slog.String("checksum", post.Checksum),
			slog.Int("images", len(post.Images)),
			slog.Int("unresolved", len(post.Unresolved)))
		result.Converted++
		result.Posts = append(result.Posts, post)
	}

	im.logger.Info("import: done",
		slog.Int("converted", result.Converted),
		slog.Int("failed", result.Failed))
	return result, nil
}

// Convert turns one note into a post: parse, merge header defaults, copy
// images, rewrite embeds, serialize and write <slug>.md. Images copied before
// a failed write are left in place.
func (im *Importer) Convert(note models.NoteFile) (models.Post, error) {
	data, err := im.vault.Read(note.Path)
	if err != nil {
		return models.Post{}, err
	}
	content := string(data)

	doc := frontmatter.Parse(content)
	s := slug.Make(note.Name)

	header := MergeHeader(doc.Header, note.Name, im.now())

	copied, unresolved, err := im.resolver.CopyAll(content, s)
	if err != nil {
		return models.Post{}, fmt.Errorf("copy images: %w", err)
	}

	out := frontmatter.Render(frontmatter.Document{
		Header: header,
		Body:   embed.Rewrite(doc.Body, s, im.layout.ImageURL),
	})

	dst := filepath.Join(im.layout.PostsDir, s+slug.Ext)
	if err := im.out.Write(dst, []byte(out)); err != nil {
		return models.Post{}, fmt.Errorf("write post: %w", err)
	}

	return models.Post{
		Source:     note.Name,
		Slug:       s,
		Path:       dst,
		Checksum:   checksum.Sum([]byte(out)),
		Images:     copied,
		Unresolved: unresolved,
	}, nil
}
