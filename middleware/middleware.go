package middleware

import (
	"bufio"
	"io"
	"net"
	"net/http"

	"github.com/arloliu/httpcompress"
	"github.com/arloliu/httpcompress/encoding"
	"github.com/arloliu/httpcompress/response"
)

const defaultBufferSize = 32 * 1024 // 32KB

// Compression returns middleware that applies the policy's negotiated
// compression to every response passing through it.
func Compression(policy *httpcompress.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidates := policy.Negotiate(r.Header.Get(response.HeaderAcceptEncoding))
			if len(candidates) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{
				ResponseWriter: w,
				policy:         policy,
				candidates:     candidates,
			}
			defer cw.finish()

			next.ServeHTTP(cw, r)
		})
	}
}

// Suppress disables compression for the response being written to w, even if
// a perfectly eligible encoder was negotiated. It is a no-op once the
// response headers have been committed, and a no-op on writers that did not
// pass through the Compression middleware.
func Suppress(w http.ResponseWriter) {
	for {
		switch v := w.(type) {
		case *compressWriter:
			v.suppressed = true
			return
		case interface{ Unwrap() http.ResponseWriter }:
			w = v.Unwrap()
		default:
			return
		}
	}
}

type compressWriter struct {
	http.ResponseWriter
	policy     *httpcompress.Policy
	candidates []*httpcompress.EncoderConfig

	selected *httpcompress.EncoderConfig
	zw       io.WriteCloser
	bw       *bufio.Writer

	status      int
	suppressed  bool
	wroteHeader bool
	committed   bool
	compressing bool
	hijacked    bool
}

func (cw *compressWriter) WriteHeader(status int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true

	if cw.shouldCompress(status) {
		cw.compressing = true
		cw.status = status
		cw.Header().Del(response.HeaderContentLength)
		cw.Header().Set(response.HeaderContentEncoding, cw.selected.Name())
		cw.Header().Add(response.HeaderVary, response.HeaderAcceptEncoding)

		// The commit is deferred to the first body write so a body that
		// never materializes does not advertise a coding over empty bytes.
		return
	}

	cw.committed = true
	cw.ResponseWriter.WriteHeader(status)
}

// commit sends the deferred status line and header block.
func (cw *compressWriter) commit() {
	if cw.committed {
		return
	}
	cw.committed = true
	cw.ResponseWriter.WriteHeader(cw.status)
}

func (cw *compressWriter) Write(p []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if !cw.compressing {
		return cw.ResponseWriter.Write(p)
	}

	// The encoder is installed on first write so empty bodies never emit a
	// compression container.
	if cw.zw == nil {
		cw.commit()
		cw.zw = cw.selected.Encoder().NewWriter(cw.ResponseWriter)
		cw.bw = bufio.NewWriterSize(cw.zw, defaultBufferSize)
	}

	return cw.bw.Write(p)
}

// shouldCompress commits the compression decision at header-write time, when
// the response's status and headers are known.
func (cw *compressWriter) shouldCompress(status int) bool {
	if cw.suppressed || cw.hijacked || !bodyAllowedForStatus(status) {
		return false
	}

	view := &response.Response{
		Status:  status,
		Headers: viewHeaders(cw.Header()),
		// The handler produces the body by writing into the response writer;
		// the view only feeds condition evaluation.
		Body: response.WriterBody{WriteTo: func(io.Writer) error { return nil }},
	}

	cfg := cw.policy.Select(view, cw.candidates)
	if cfg == nil || cfg.Name() == encoding.TokenIdentity {
		return false
	}
	cw.selected = cfg

	return true
}

// finish flushes and terminates the compressed stream after the handler
// returns.
func (cw *compressWriter) finish() {
	// A flush may have committed the coding header before any body write;
	// such a response still needs a valid, if empty, compressed stream.
	if cw.compressing && cw.committed && cw.zw == nil {
		cw.zw = cw.selected.Encoder().NewWriter(cw.ResponseWriter)
	}
	if cw.bw != nil {
		_ = cw.bw.Flush()
	}
	if cw.zw != nil {
		_ = cw.zw.Close()
	}
	// A handler that wrote headers but no body still owes the client its
	// status line, minus the coding it never used.
	if cw.wroteHeader && !cw.committed {
		cw.Header().Del(response.HeaderContentEncoding)
		cw.commit()
	}
}

// Flush implements http.Flusher, forcing buffered and partially compressed
// data out to the client. Flushing before the first write implies
// WriteHeader(http.StatusOK), matching net/http.
func (cw *compressWriter) Flush() {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	cw.commit()
	if cw.bw != nil {
		_ = cw.bw.Flush()
	}
	if f, ok := cw.zw.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack implements http.Hijacker. A hijacked connection switches protocols,
// so compression never applies to it.
func (cw *compressWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := cw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	cw.hijacked = true

	return hj.Hijack()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (cw *compressWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// bodyAllowedForStatus mirrors the HTTP rules for bodyless responses.
func bodyAllowedForStatus(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent:
		return false
	case status == http.StatusNotModified:
		return false
	}

	return true
}

// viewHeaders snapshots an http.Header into the response model's header set.
// http.Header carries no ordering, which is fine for condition evaluation.
func viewHeaders(h http.Header) response.Headers {
	var out response.Headers
	for name, values := range h {
		for _, v := range values {
			out.Add(name, v)
		}
	}

	return out
}
