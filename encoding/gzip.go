package encoding

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipEncoder emits the framed gzip container (RFC 1952): a self-describing
// header and a CRC trailer around a DEFLATE stream.
type GzipEncoder struct {
	level int
}

var _ Encoder = (*GzipEncoder)(nil)

// NewGzipEncoder creates a gzip encoder with the given compression level.
// Levels outside the valid gzip range fall back to the default level.
func NewGzipEncoder(level int) *GzipEncoder {
	if level < gzip.DefaultCompression || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}

	return &GzipEncoder{level: level}
}

// Token returns "gzip".
func (e *GzipEncoder) Token() string { return TokenGzip }

// NewWriter wraps w with a gzip compressor at the configured level.
func (e *GzipEncoder) NewWriter(w io.Writer) io.WriteCloser {
	zw, err := gzip.NewWriterLevel(w, e.level)
	if err != nil {
		// Level is clamped at construction, so this never happens.
		panic(fmt.Sprintf("gzip writer with level %d: %v", e.level, err))
	}

	return zw
}

// NewDecoder wraps r with a gzip decompressor. It fails if r does not start
// with a valid gzip header.
func (e *GzipEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decoder: %w", err)
	}

	return zr, nil
}
