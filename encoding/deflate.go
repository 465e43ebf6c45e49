package encoding

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateEncoder emits a raw DEFLATE stream (RFC 1951), the unframed
// counterpart of gzip. It carries no container header or checksum, which is
// why its default negotiation priority sits below gzip: a handful of clients
// mishandle the raw form.
type DeflateEncoder struct {
	level int
}

var _ Encoder = (*DeflateEncoder)(nil)

// NewDeflateEncoder creates a deflate encoder with the given compression
// level. Levels outside the valid DEFLATE range fall back to the default.
func NewDeflateEncoder(level int) *DeflateEncoder {
	if level < flate.DefaultCompression || level > flate.BestCompression {
		level = flate.DefaultCompression
	}

	return &DeflateEncoder{level: level}
}

// Token returns "deflate".
func (e *DeflateEncoder) Token() string { return TokenDeflate }

// NewWriter wraps w with a raw DEFLATE compressor at the configured level.
func (e *DeflateEncoder) NewWriter(w io.Writer) io.WriteCloser {
	zw, err := flate.NewWriter(w, e.level)
	if err != nil {
		// Level is clamped at construction, so this never happens.
		panic(fmt.Sprintf("deflate writer with level %d: %v", e.level, err))
	}

	return zw
}

// NewDecoder wraps r with a raw DEFLATE decompressor.
func (e *DeflateEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}
