package importer

import (
	"log/slog"
	"path/filepath"

	"github.com/starford/notepress/internal/embed"
	"github.com/starford/notepress/internal/storage"
)

// DefaultSearchDirs are the vault folders probed, in order, for an embed's
// file name after the embedded path itself.
var DefaultSearchDirs = []string{"attachments", "images", "assets"}

// Resolver locates embedded images in the vault and copies them into the
// per-post image directory.
type Resolver struct {
	vault      storage.Provider
	out        storage.Provider
	imagesDir  string
	searchDirs []string
	logger     *slog.Logger
}

// NewResolver creates a resolver copying from vault into imagesDir of out.
func NewResolver(vault, out storage.Provider, imagesDir string, searchDirs []string, logger *slog.Logger) *Resolver {
	return &Resolver{
		vault:      vault,
		out:        out,
		imagesDir:  imagesDir,
		searchDirs: searchDirs,
		logger:     logger,
	}
}

// Candidates returns the vault-relative paths tried for ref, in order: the
// embedded path itself, then its file name under each search directory.
func (r *Resolver) Candidates(ref string) []string {
	base := embed.Base(ref)
	out := make([]string, 0, len(r.searchDirs)+1)
	out = append(out, ref)
	for _, dir := range r.searchDirs {
		out = append(out, filepath.Join(dir, base))
	}
	return out
}

// Dir returns the image directory for a post slug, relative to the project root.
func (r *Resolver) Dir(slug string) string {
	return filepath.Join(r.imagesDir, slug)
}

// CopyAll copies every image embedded in content into the slug's image
// directory. An embed with no existing candidate is returned in unresolved;
// it is not an error. The only error is failing to create the directory.
func (r *Resolver) CopyAll(content, slug string) (copied, unresolved []string, err error) {
	refs := embed.Refs(content)
	if len(refs) == 0 {
		return nil, nil, nil
	}

	dir := r.Dir(slug)
	if err := r.out.MkdirAll(dir); err != nil {
		return nil, nil, err
	}

	for _, ref := range refs {
		name := embed.Base(ref)
		if r.copyFirst(ref, filepath.Join(dir, name)) {
			r.logger.Info("import: image copied", slog.String("image", name), slog.String("slug", slug))
			copied = append(copied, name)
			continue
		}
		r.logger.Debug("import: image unresolved", slog.String("ref", ref), slog.String("slug", slug))
		unresolved = append(unresolved, ref)
	}
	return copied, unresolved, nil
}

// copyFirst copies the first candidate that is a regular file and can be
// read into dst. Candidates that fail to copy are skipped.
func (r *Resolver) copyFirst(ref, dst string) bool {
	for _, src := range r.Candidates(ref) {
		info, err := r.vault.Stat(src)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := r.copyFile(src, dst); err != nil {
			r.logger.Debug("import: image copy failed",
				slog.String("src", src),
				slog.String("error", err.Error()))
			continue
		}
		return true
	}
	return false
}

func (r *Resolver) copyFile(src, dst string) error {
	rc, err := r.vault.Open(src)
	if err != nil {
		return err
	}
	defer rc.Close()
	return r.out.Copy(dst, rc)
}
