package importer

import (
	"strings"
	"time"

	"github.com/starford/notepress/internal/frontmatter"
	"github.com/starford/notepress/internal/slug"
)

// Header keys written to every post, in output order.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyDate        = "date"
	KeyTags        = "tags"
	KeyDraft       = "draft"
)

// MergeHeader builds the post header from a note's parsed header. Only the
// five post keys are kept. title, description, date and tags fall back to
// their defaults when missing or empty; draft falls back only when missing.
// The default date is today's UTC date kept as a string value.
func MergeHeader(src *frontmatter.Header, filename string, now time.Time) *frontmatter.Header {
	out := frontmatter.NewHeader()
	out.Set(KeyTitle, orDefault(src, KeyTitle, frontmatter.String(strings.TrimSuffix(filename, slug.Ext))))
	out.Set(KeyDescription, orDefault(src, KeyDescription, frontmatter.String("")))
	out.Set(KeyDate, orDefault(src, KeyDate, frontmatter.String(now.UTC().Format(time.DateOnly))))
	out.Set(KeyTags, orDefault(src, KeyTags, frontmatter.List()))

	draft, ok := src.Get(KeyDraft)
	if !ok {
		draft = frontmatter.Bool(false)
	}
	out.Set(KeyDraft, draft)
	return out
}

func orDefault(h *frontmatter.Header, key string, def frontmatter.Value) frontmatter.Value {
	if v, ok := h.Get(key); ok && v.Truthy() {
		return v
	}
	return def
}
