//go:build !cgo

package encoding

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewWriter wraps w with a zstd compressor at the configured level.
func (e *ZstdEncoder) NewWriter(w io.Writer) io.WriteCloser {
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(e.level)),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		// Level is clamped at construction, so this never happens.
		panic(fmt.Sprintf("zstd writer with level %d: %v", e.level, err))
	}

	return zw
}

// NewDecoder wraps r with a zstd decompressor.
func (e *ZstdEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	return zr.IOReadCloser(), nil
}
