package frontmatter

import (
	"slices"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	KindString Kind = iota
	KindBool
	KindList
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a single frontmatter value: a string, a boolean, a list of
// strings or a calendar date.
type Value struct {
	kind Kind
	str  string
	b    bool
	list []string
	date time.Time
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a list value. A nil slice is stored as an empty list.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindList, list: items}
}

// Date returns a date value. Only the calendar date is ever rendered.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// BoolValue returns the boolean payload and whether v is a boolean.
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// Items returns the list payload and whether v is a list.
func (v Value) Items() ([]string, bool) { return v.list, v.kind == KindList }

// Time returns the date payload and whether v is a date.
func (v Value) Time() (time.Time, bool) { return v.date, v.kind == KindDate }

// Truthy reports whether v counts as set when filling defaults: a
// non-empty string, true, or any list or date.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindBool:
		return v.b
	default:
		return true
	}
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindList:
		return slices.Equal(v.list, o.list)
	case KindDate:
		return v.date.Format(time.DateOnly) == o.date.Format(time.DateOnly)
	}
	return false
}

// Classify turns a raw header value into a Value. The value is trimmed,
// then checked in order: bracketed list, quoted string, boolean literal,
// plain string.
func Classify(raw string) Value {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		items := []string{}
		for _, part := range strings.Split(s[1:len(s)-1], ",") {
			part = unquote(strings.TrimSpace(part))
			if part != "" {
				items = append(items, part)
			}
		}
		return List(items...)
	}

	if isQuoted(s) {
		return String(s[1 : len(s)-1])
	}

	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return String(s)
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'')
}

func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
