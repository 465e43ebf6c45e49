package encoding

import "io"

// IdentityEncoder is the no-op coding: data passes through unchanged in both
// directions.
//
// It exists so that "identity" can participate in negotiation like any other
// coding; selecting it leaves the response bytes untouched.
type IdentityEncoder struct{}

var _ Encoder = IdentityEncoder{}

// NewIdentityEncoder creates the no-op encoder.
func NewIdentityEncoder() IdentityEncoder {
	return IdentityEncoder{}
}

// Token returns "identity".
func (IdentityEncoder) Token() string { return TokenIdentity }

// NewWriter returns w unchanged behind a no-op Close.
func (IdentityEncoder) NewWriter(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

// NewDecoder returns r unchanged behind a no-op Close.
func (IdentityEncoder) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
