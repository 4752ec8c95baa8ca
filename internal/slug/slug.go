// Package slug derives URL- and file-safe identifiers from note filenames.
package slug

import (
	"regexp"
	"strings"
)

// Ext is the note extension stripped before slugging.
const Ext = ".md"

var disallowedRe = regexp.MustCompile(`[^a-z0-9가-힣]+`)

// Make lower-cases filename, drops a trailing ".md", collapses every run of
// characters outside ASCII letters, digits and Hangul syllables into a
// single hyphen and trims hyphens from both ends.
//
// Distinct filenames may produce the same slug.
func Make(filename string) string {
	s := strings.ToLower(filename)
	s = strings.TrimSuffix(s, Ext)
	s = disallowedRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
