package response

import (
	"iter"
	"strings"
)

// Common header names used by the compression layer.
const (
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderContentType     = "Content-Type"
	HeaderVary            = "Vary"
)

// Header is a single name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered multimap of header name/value pairs with
// case-insensitive name matching. The zero value is an empty, usable set.
//
// Mutating methods operate on the receiver; use Clone before mutating when
// the original set must stay observable to other holders.
type Headers struct {
	pairs []Header
}

// NewHeaders creates a header set from the given pairs, preserving order.
func NewHeaders(pairs ...Header) Headers {
	h := Headers{pairs: make([]Header, len(pairs))}
	copy(h.pairs, pairs)

	return h
}

// Len returns the number of name/value pairs in the set.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Get returns the first value associated with name, or "" if absent.
// Name matching is case-insensitive.
func (h *Headers) Get(name string) string {
	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			return p.Value
		}
	}

	return ""
}

// Has reports whether at least one value is associated with name.
func (h *Headers) Has(name string) bool {
	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}

	return false
}

// Values returns all values associated with name, in insertion order.
func (h *Headers) Values(name string) []string {
	var values []string
	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			values = append(values, p.Value)
		}
	}

	return values
}

// Add appends a name/value pair to the end of the set.
func (h *Headers) Add(name, value string) {
	h.pairs = append(h.pairs, Header{Name: name, Value: value})
}

// Set replaces all values associated with name by a single value. The new
// value takes the position of the first existing occurrence; if name was
// absent the pair is appended.
func (h *Headers) Set(name, value string) {
	out := h.pairs[:0]
	replaced := false
	for _, p := range h.pairs {
		if !strings.EqualFold(p.Name, name) {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, Header{Name: p.Name, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Header{Name: name, Value: value})
	}
	h.pairs = out
}

// Del removes all values associated with name.
func (h *Headers) Del(name string) {
	out := h.pairs[:0]
	for _, p := range h.pairs {
		if !strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	h.pairs = out
}

// Clone returns an independent copy of the set with the same order.
func (h *Headers) Clone() Headers {
	return NewHeaders(h.pairs...)
}

// All iterates over the pairs in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range h.pairs {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}
