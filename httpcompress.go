// Package httpcompress negotiates HTTP response content encodings and wraps
// outgoing body streams so the bytes delivered to the transport are
// compressed, with response headers adjusted to match.
//
// Given a client's Accept-Encoding preferences and a set of server-configured
// encoders, each with eligibility conditions and a priority weight, the
// package selects at most one encoder per response and substitutes the
// response with a compressed variant before it reaches the transport.
//
// # Core Concepts
//
//   - encoding.Encoder: a named, bidirectional stream transform (gzip,
//     deflate, br, zstd, lz4, snappy, identity)
//   - Builder / Policy: a registry of encoders frozen at startup into an
//     immutable policy shared read-only by all requests
//   - Negotiate: parses the Accept-Encoding header into a priority-ordered
//     candidate list; client quality always dominates server priority
//   - Transform: substitutes the concrete response with a compressed variant,
//     dispatching on its body representation
//
// # Basic Usage
//
// Building a policy and compressing a response:
//
//	builder := httpcompress.NewBuilder()
//	_ = builder.RegisterGzip(httpcompress.DefaultGzipLevel,
//	    httpcompress.WithCondition(httpcompress.MinSize(httpcompress.DefaultMinSize)),
//	)
//	_ = builder.RegisterBrotli(4)
//	builder.AddCondition(httpcompress.ExcludeContentTypes("image/", "video/"))
//	policy := builder.Build()
//
//	// Per request:
//	candidates := policy.Negotiate(req.Header.Get("Accept-Encoding"))
//	resp = policy.Transform(resp, candidates)
//
// Building with nothing registered populates the default registry: identity
// (priority 1.0), gzip (priority 1.0) and deflate (priority 0.9).
//
// For net/http servers, the middleware package wires negotiation and
// transformation into a standard handler chain:
//
//	handler = middleware.Compression(policy)(handler)
//
// # Concurrency
//
// A Policy is immutable after Build and safe for unsynchronized concurrent
// reads. All per-request state (parsed tokens, candidate lists, wrapped
// streams) is request-local. Stream wrapping is incremental with bounded
// buffering, so memory use is independent of body size.
package httpcompress

// Compression levels selecting each library's default behavior.
const (
	// DefaultGzipLevel selects the gzip library's default compression level.
	DefaultGzipLevel = -1
	// DefaultDeflateLevel selects the DEFLATE library's default compression level.
	DefaultDeflateLevel = -1
)

// NewDefaultPolicy returns the policy an empty builder produces: identity
// (priority 1.0), gzip (priority 1.0) and deflate (priority 0.9), with no
// conditions.
func NewDefaultPolicy() *Policy {
	return NewBuilder().Build()
}
