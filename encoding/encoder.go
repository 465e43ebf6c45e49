package encoding

import (
	"io"
)

// Content-coding tokens as advertised in Accept-Encoding and Content-Encoding
// headers. Values follow the IANA HTTP content-coding registry where one
// exists; lz4 and snappy are non-registered tokens for internal traffic.
const (
	TokenIdentity = "identity"
	TokenGzip     = "gzip"
	TokenDeflate  = "deflate"
	TokenBrotli   = "br"
	TokenZstd     = "zstd"
	TokenLZ4      = "lz4"
	TokenSnappy   = "snappy"
)

// Encoder is a named, bidirectional stream transform.
//
// Implementations must be safe for concurrent use: NewWriter and NewDecoder
// are invoked once per response on independent streams, and no state may be
// shared between the streams they produce.
type Encoder interface {
	// Token returns the content-coding token this encoder is advertised under.
	Token() string

	// NewWriter wraps w so that bytes written to the returned writer are
	// compressed and forwarded to w incrementally. Close flushes all buffered
	// data and terminates the compressed stream; it does not close w.
	NewWriter(w io.Writer) io.WriteCloser

	// NewDecoder wraps r with the matching decompressor. Reading from the
	// returned reader yields the original bytes. Close releases decoder
	// resources; it does not close r.
	NewDecoder(r io.Reader) (io.ReadCloser, error)
}

// NewReader decorates the pull side of enc: reading from the returned stream
// yields the compressed form of the bytes read from src.
//
// The transform is applied incrementally through an io.Pipe, so at most one
// chunk is in flight and memory stays bounded regardless of source size.
// Closing the returned reader stops the transform and closes src if it
// implements io.Closer.
func NewReader(enc Encoder, src io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		zw := enc.NewWriter(pw)
		_, err := io.Copy(zw, src)
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	return &compressingReader{pr: pr, src: src}
}

type compressingReader struct {
	pr  *io.PipeReader
	src io.Reader
}

func (r *compressingReader) Read(p []byte) (int, error) {
	return r.pr.Read(p)
}

func (r *compressingReader) Close() error {
	err := r.pr.Close()
	if c, ok := r.src.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
