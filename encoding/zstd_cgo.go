//go:build cgo

package encoding

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewWriter wraps w with a zstd compressor at the configured level.
func (e *ZstdEncoder) NewWriter(w io.Writer) io.WriteCloser {
	return &gozstdWriter{zw: gozstd.NewWriterLevel(w, e.level)}
}

// NewDecoder wraps r with a zstd decompressor.
func (e *ZstdEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{zr: gozstd.NewReader(r)}, nil
}

type gozstdWriter struct {
	zw *gozstd.Writer
}

func (w *gozstdWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

// Close terminates the zstd frame and returns the underlying C resources
// to gozstd's pool.
func (w *gozstdWriter) Close() error {
	err := w.zw.Close()
	w.zw.Release()

	return err
}

type gozstdReader struct {
	zr *gozstd.Reader
}

func (r *gozstdReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *gozstdReader) Close() error {
	r.zr.Release()
	return nil
}
