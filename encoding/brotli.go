package encoding

import (
	"io"

	"github.com/andybalholm/brotli"
)

// BrotliEncoder emits a Brotli stream (RFC 7932) under the "br" token.
//
// Brotli is not part of the default registry population; register it
// explicitly when the deployment's clients support it.
type BrotliEncoder struct {
	level int
}

var _ Encoder = (*BrotliEncoder)(nil)

// NewBrotliEncoder creates a brotli encoder with the given quality level.
// Levels outside 0-11 fall back to the default level.
func NewBrotliEncoder(level int) *BrotliEncoder {
	if level < brotli.BestSpeed || level > brotli.BestCompression {
		level = brotli.DefaultCompression
	}

	return &BrotliEncoder{level: level}
}

// Token returns "br".
func (e *BrotliEncoder) Token() string { return TokenBrotli }

// NewWriter wraps w with a brotli compressor at the configured quality.
func (e *BrotliEncoder) NewWriter(w io.Writer) io.WriteCloser {
	return brotli.NewWriterLevel(w, e.level)
}

// NewDecoder wraps r with a brotli decompressor.
func (e *BrotliEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}
