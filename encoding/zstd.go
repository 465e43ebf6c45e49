package encoding

// ZstdEncoder emits a Zstandard stream (RFC 8878) under the "zstd" token.
//
// Two implementations exist behind build tags: cgo builds use valyala/gozstd
// (bindings to the reference C library), pure Go builds fall back to
// klauspost/compress/zstd. Both produce interchangeable frames.
//
// Zstd is not part of the default registry population; register it explicitly
// when the deployment's clients support it.
type ZstdEncoder struct {
	level int
}

var _ Encoder = (*ZstdEncoder)(nil)

// NewZstdEncoder creates a zstd encoder with the given compression level.
// Levels outside 1-22 fall back to level 3, the zstd default.
func NewZstdEncoder(level int) *ZstdEncoder {
	if level < 1 || level > 22 {
		level = 3
	}

	return &ZstdEncoder{level: level}
}

// Token returns "zstd".
func (e *ZstdEncoder) Token() string { return TokenZstd }
