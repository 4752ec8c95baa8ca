package frontmatter

// Header is an insertion-ordered mapping from key to Value.
// The zero value is an empty header ready to use.
type Header struct {
	keys   []string
	values map[string]Value
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{values: make(map[string]Value)}
}

// Set stores v under key. Re-setting an existing key replaces its value
// and keeps its original position.
func (h *Header) Set(key string, v Value) {
	if h.values == nil {
		h.values = make(map[string]Value)
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = v
}

// Get returns the value stored under key.
func (h *Header) Get(key string) (Value, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Has reports whether key is present.
func (h *Header) Has(key string) bool {
	_, ok := h.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keys.
func (h *Header) Len() int { return len(h.keys) }

// Equal reports whether both headers hold the same keys in the same order
// with equal values.
func (h *Header) Equal(o *Header) bool {
	if h.Len() != o.Len() {
		return false
	}
	for i, k := range h.keys {
		if o.keys[i] != k {
			return false
		}
		if !h.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}
