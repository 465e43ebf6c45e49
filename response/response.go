package response

import (
	"bytes"
	"io"
	"mime"
	"strconv"
)

// Body is the sealed set of response body representations. Exactly five types
// implement it: ReaderBody, WriterBody, BytesBody, NoContent and Upgrade.
type Body interface {
	isBody()
}

// ReaderBody is a body obtained by opening a readable stream on demand.
// Open must return a fresh stream on each call; it is invoked at most once
// per delivery attempt and only when the body is actually consumed.
type ReaderBody struct {
	Open func() (io.ReadCloser, error)
}

// WriterBody is a body produced by writing into a caller-supplied sink.
// WriteTo must write the complete body to w and return; it must not retain w.
type WriterBody struct {
	WriteTo func(w io.Writer) error
}

// BytesBody is an in-memory byte payload.
type BytesBody struct {
	Data []byte
}

// NoContent is a response without a body.
type NoContent struct{}

// Upgrade is a protocol-switching response; the connection is taken over by
// another protocol and the body, if any, is outside HTTP semantics.
type Upgrade struct{}

func (ReaderBody) isBody() {}
func (WriterBody) isBody() {}
func (BytesBody) isBody()  {}
func (NoContent) isBody()  {}
func (Upgrade) isBody()    {}

// Response is an outgoing HTTP response as seen by the compression layer:
// a status code, an ordered header set, and exactly one body representation.
type Response struct {
	Status  int
	Headers Headers
	Body    Body

	// SuppressCompression opts this response out of compression regardless of
	// the negotiation outcome. Any collaborator may set it before the response
	// reaches the transport.
	SuppressCompression bool

	// compressed marks a response produced by the transformer, guarding
	// against double-wrapping when the same response passes through twice.
	compressed bool
}

// ContentType returns the media type of the response without parameters,
// or "" when the header is absent or malformed.
func (r *Response) ContentType() string {
	ct := r.Headers.Get(HeaderContentType)
	if ct == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}

	return mediaType
}

// ContentLength returns the body length in bytes if it is known, either from
// the Content-Length header or from an in-memory payload.
func (r *Response) ContentLength() (int64, bool) {
	if v := r.Headers.Get(HeaderContentLength); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n >= 0 {
			return n, true
		}

		return 0, false
	}

	switch b := r.Body.(type) {
	case BytesBody:
		return int64(len(b.Data)), true
	case NoContent:
		return 0, true
	default:
		return 0, false
	}
}

// Compressed reports whether this response was produced by the transformer.
func (r *Response) Compressed() bool {
	return r.compressed
}

// MarkCompressed flags the response as a transformer product. It is called by
// the transformer when substituting a compressed variant.
func (r *Response) MarkCompressed() {
	r.compressed = true
}

// Reader opens the response body as a readable stream, regardless of variant.
//
// WriterBody is drained into memory, so this accessor is intended for tests
// and buffered consumers rather than the streaming delivery path. NoContent
// and Upgrade yield an empty stream.
func (r *Response) Reader() (io.ReadCloser, error) {
	switch b := r.Body.(type) {
	case ReaderBody:
		return b.Open()
	case WriterBody:
		var buf bytes.Buffer
		if err := b.WriteTo(&buf); err != nil {
			return nil, err
		}

		return io.NopCloser(&buf), nil
	case BytesBody:
		return io.NopCloser(bytes.NewReader(b.Data)), nil
	default: // NoContent, Upgrade
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
}
