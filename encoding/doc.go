// Package encoding provides the content-coding capabilities used by the
// negotiation layer: named, bidirectional stream transforms that can wrap a
// writable sink (push side) or a readable source (pull side).
//
// # Architecture
//
// The package defines one core interface:
//
//	type Encoder interface {
//	    Token() string
//	    NewWriter(w io.Writer) io.WriteCloser
//	    NewDecoder(r io.Reader) (io.ReadCloser, error)
//	}
//
// NewWriter decorates the push side: bytes written to the returned writer are
// compressed and forwarded to w incrementally. NewDecoder is the matching
// decompressor, used by clients and by round-trip verification.
//
// The pull side is provided symmetrically for every encoder by NewReader,
// which decorates a readable source so that reading from it yields the
// compressed stream. It is built on io.Pipe, so memory use stays bounded
// independent of body size and backpressure propagates to the source.
//
// # Supported codings
//
//   - identity: no-op pass-through
//   - gzip:     framed DEFLATE container (RFC 1952), klauspost/compress/gzip
//   - deflate:  raw DEFLATE stream (RFC 1951), klauspost/compress/flate
//   - br:       Brotli (RFC 7932), andybalholm/brotli
//   - zstd:     Zstandard (RFC 8878); cgo builds use valyala/gozstd, pure Go
//     builds fall back to klauspost/compress/zstd
//   - lz4:      LZ4 frame format, pierrec/lz4 (non-IANA token, for internal
//     service-to-service traffic)
//   - snappy:   Snappy framing via klauspost/compress/s2 (non-IANA token)
//
// All encoders are stateless and safe for concurrent use; per-stream state
// lives in the writers and readers they create.
package encoding
