package encoding

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// SnappyEncoder emits the Snappy framing format under the "snappy" token,
// implemented with the s2 codec in Snappy-compatible mode.
//
// Like lz4, snappy is not an IANA-registered content coding and is intended
// for internal service-to-service links.
type SnappyEncoder struct{}

var _ Encoder = SnappyEncoder{}

// NewSnappyEncoder creates a snappy encoder. Snappy has no compression
// levels.
func NewSnappyEncoder() SnappyEncoder {
	return SnappyEncoder{}
}

// Token returns "snappy".
func (SnappyEncoder) Token() string { return TokenSnappy }

// NewWriter wraps w with a Snappy-compatible frame compressor.
func (SnappyEncoder) NewWriter(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w, s2.WriterSnappyCompat(), s2.WriterConcurrency(1))
}

// NewDecoder wraps r with a frame decompressor. The s2 reader transparently
// consumes Snappy-compatible streams.
func (SnappyEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
