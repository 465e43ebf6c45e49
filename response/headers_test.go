package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders_Get_CaseInsensitive(t *testing.T) {
	h := NewHeaders(
		Header{Name: "Content-Type", Value: "text/html"},
		Header{Name: "X-Custom", Value: "a"},
	)

	require.Equal(t, "text/html", h.Get("content-type"))
	require.Equal(t, "text/html", h.Get("CONTENT-TYPE"))
	require.Equal(t, "a", h.Get("x-custom"))
	require.Equal(t, "", h.Get("missing"))
}

func TestHeaders_Get_FirstValueWins(t *testing.T) {
	h := NewHeaders(
		Header{Name: "Vary", Value: "Accept"},
		Header{Name: "vary", Value: "Accept-Encoding"},
	)

	require.Equal(t, "Accept", h.Get("Vary"))
	require.Equal(t, []string{"Accept", "Accept-Encoding"}, h.Values("VARY"))
}

func TestHeaders_Set_ReplacesInPlace(t *testing.T) {
	h := NewHeaders(
		Header{Name: "A", Value: "1"},
		Header{Name: "Content-Encoding", Value: "identity"},
		Header{Name: "B", Value: "2"},
		Header{Name: "content-encoding", Value: "stale"},
	)

	h.Set("Content-Encoding", "gzip")

	require.Equal(t, 3, h.Len())
	require.Equal(t, []string{"gzip"}, h.Values("Content-Encoding"))

	// The replacement keeps the first occurrence's position.
	var names []string
	for name := range h.All() {
		names = append(names, name)
	}
	require.Equal(t, []string{"A", "Content-Encoding", "B"}, names)
}

func TestHeaders_Set_AppendsWhenAbsent(t *testing.T) {
	h := NewHeaders(Header{Name: "A", Value: "1"})

	h.Set("Content-Encoding", "gzip")

	require.Equal(t, 2, h.Len())
	require.Equal(t, "gzip", h.Get("Content-Encoding"))
}

func TestHeaders_Del_RemovesAllValues(t *testing.T) {
	h := NewHeaders(
		Header{Name: "Content-Length", Value: "10"},
		Header{Name: "A", Value: "1"},
		Header{Name: "content-length", Value: "20"},
	)

	h.Del("Content-Length")

	require.Equal(t, 1, h.Len())
	require.False(t, h.Has("Content-Length"))
	require.Equal(t, "1", h.Get("A"))
}

func TestHeaders_Clone_Independent(t *testing.T) {
	orig := NewHeaders(
		Header{Name: "Content-Length", Value: "10"},
		Header{Name: "Content-Type", Value: "text/plain"},
	)

	clone := orig.Clone()
	clone.Del("Content-Length")
	clone.Set("Content-Encoding", "gzip")

	require.Equal(t, "10", orig.Get("Content-Length"))
	require.False(t, orig.Has("Content-Encoding"))
	require.Equal(t, 2, orig.Len())
}

func TestHeaders_All_InsertionOrder(t *testing.T) {
	h := Headers{}
	h.Add("B", "2")
	h.Add("A", "1")
	h.Add("C", "3")

	var got []Header
	for name, value := range h.All() {
		got = append(got, Header{Name: name, Value: value})
	}

	require.Equal(t, []Header{{"B", "2"}, {"A", "1"}, {"C", "3"}}, got)
}
