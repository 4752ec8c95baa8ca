// Package frontmatter reads and writes the flat `key: value` header block
// that prefixes vault notes and blog posts.
package frontmatter

import (
	"fmt"
	"strings"
	"time"
)

const (
	delim        = "---"
	openDelim    = delim + "\n"
	closingDelim = "\n" + delim + "\n"
)

// Document is a parsed note: its header and the Markdown body after it.
type Document struct {
	Header *Header
	Body   string
}

// Parse splits content into header and body. The header block must open
// the content with a "---" line and end at the first following "---" line.
// Content without a complete block is returned as body with an empty header.
func Parse(content string) Document {
	if !strings.HasPrefix(content, openDelim) {
		return Document{Header: NewHeader(), Body: content}
	}

	rest := content[len(openDelim):]
	idx := strings.Index(rest, closingDelim)
	if idx < 0 {
		return Document{Header: NewHeader(), Body: content}
	}

	return Document{
		Header: ParseHeader(rest[:idx]),
		Body:   rest[idx+len(closingDelim):],
	}
}

// ParseHeader parses the lines between the delimiters. Lines without a
// colon are skipped; a repeated key keeps its last value.
func ParseHeader(block string) *Header {
	h := NewHeader()
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h.Set(strings.TrimSpace(key), Classify(value))
	}
	return h
}

// Serialize renders h as a delimited header block without a trailing
// newline. Lists and strings are double-quoted, booleans and dates are bare.
// Strings are written as-is, so a date kept as a string stays quoted.
func Serialize(h *Header) string {
	lines := make([]string, 0, h.Len()+2)
	lines = append(lines, delim)
	for _, key := range h.keys {
		lines = append(lines, key+": "+render(h.values[key]))
	}
	lines = append(lines, delim)
	return strings.Join(lines, "\n")
}

// Render joins the serialized header and body the way posts are written.
func Render(doc Document) string {
	return Serialize(doc.Header) + "\n" + doc.Body
}

func render(v Value) string {
	switch v.kind {
	case KindList:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = `"` + item + `"`
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case KindString:
		return `"` + v.str + `"`
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindDate:
		return v.date.Format(time.DateOnly)
	default:
		return fmt.Sprint(v.str)
	}
}
