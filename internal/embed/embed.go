// Package embed finds Obsidian image embeds (![[path]]) and rewrites them
// into standard Markdown image links.
package embed

import (
	"path"
	"regexp"
	"strings"
)

// DefaultPrefix is the public URL root under which post images are served.
const DefaultPrefix = "/images/posts"

var embedRe = regexp.MustCompile(`!\[\[([^\]]+)\]\]`)

// Refs returns the distinct embedded paths in content, in first-seen order.
func Refs(content string) []string {
	matches := embedRe.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		ref := m[1]
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

// Base returns the file name of an embedded path, dropping any
// vault-relative directories.
func Base(ref string) string {
	return path.Base(ref)
}

// Rewrite replaces every embed in body with ![](prefix/slug/base).
// Text outside embeds is left untouched.
func Rewrite(body, slug, prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	return embedRe.ReplaceAllStringFunc(body, func(match string) string {
		ref := embedRe.FindStringSubmatch(match)[1]
		return "![](" + prefix + "/" + slug + "/" + Base(ref) + ")"
	})
}
