package httpcompress

import (
	"bytes"
	"io"
	"strings"

	"github.com/arloliu/httpcompress/encoding"
	"github.com/arloliu/httpcompress/response"
)

// Select applies the pass-through guards and eligibility conditions to resp
// and returns the first negotiated candidate that accepts it, or nil when the
// response must pass through uncompressed.
//
// Guards, in order: no candidates, suppression flag, response already
// produced by a previous transformation, an explicit non-identity
// Content-Encoding already present, any global condition rejecting the
// response. Per-encoder conditions are evaluated lazily in candidate order,
// short-circuiting on the first failing predicate.
func (p *Policy) Select(resp *response.Response, candidates []*EncoderConfig) *EncoderConfig {
	if resp == nil || len(candidates) == 0 {
		return nil
	}
	if resp.SuppressCompression || resp.Compressed() {
		return nil
	}
	if ce := resp.Headers.Get(response.HeaderContentEncoding); ce != "" && !strings.EqualFold(ce, encoding.TokenIdentity) {
		return nil
	}
	for _, cond := range p.global {
		if !cond(resp) {
			return nil
		}
	}

	for _, cfg := range candidates {
		if cfg.eligible(resp) {
			return cfg
		}
	}

	return nil
}

// Transform substitutes resp with a compressed variant using the first
// eligible negotiated candidate, or returns resp unchanged when no candidate
// applies.
//
// Bodies without content (NoContent) and protocol-switching responses
// (Upgrade) always pass through untouched. Streamed-read bodies are wrapped
// lazily: the capability is applied only when the stream is actually opened.
// Buffered bodies are converted to a streamed-read over the buffer.
//
// The original response is never mutated; its headers are cloned before the
// rewrite so collaborators holding a reference keep seeing the pre-transform
// state.
func (p *Policy) Transform(resp *response.Response, candidates []*EncoderConfig) *response.Response {
	if resp == nil {
		return nil
	}

	switch resp.Body.(type) {
	case response.NoContent, response.Upgrade:
		return resp
	}

	cfg := p.Select(resp, candidates)
	if cfg == nil {
		return resp
	}

	enc := cfg.encoder
	switch body := resp.Body.(type) {
	case response.ReaderBody:
		return compressedVariant(resp, cfg, response.ReaderBody{
			Open: func() (io.ReadCloser, error) {
				rc, err := body.Open()
				if err != nil {
					return nil, err
				}

				return encoding.NewReader(enc, rc), nil
			},
		})
	case response.WriterBody:
		return compressedVariant(resp, cfg, response.WriterBody{
			WriteTo: func(w io.Writer) error {
				zw := enc.NewWriter(w)
				if err := body.WriteTo(zw); err != nil {
					_ = zw.Close()
					return err
				}

				return zw.Close()
			},
		})
	case response.BytesBody:
		data := body.Data
		return compressedVariant(resp, cfg, response.ReaderBody{
			Open: func() (io.ReadCloser, error) {
				return encoding.NewReader(enc, bytes.NewReader(data)), nil
			},
		})
	default:
		// Body is sealed; NoContent and Upgrade returned above.
		return resp
	}
}

// compressedVariant builds the substituted response: a clone of the original
// headers with Content-Length dropped and Content-Encoding set to the
// selected encoder's registered name, around the wrapped body.
func compressedVariant(orig *response.Response, cfg *EncoderConfig, body response.Body) *response.Response {
	headers := orig.Headers.Clone()
	headers.Del(response.HeaderContentLength)
	headers.Set(response.HeaderContentEncoding, cfg.name)

	out := &response.Response{
		Status:  orig.Status,
		Headers: headers,
		Body:    body,
	}
	out.MarkCompressed()

	return out
}
