package httpcompress

import (
	"fmt"
	"strings"

	"github.com/arloliu/httpcompress/encoding"
	"github.com/arloliu/httpcompress/errs"
	"github.com/arloliu/httpcompress/internal/options"
	"github.com/arloliu/httpcompress/response"
)

// DefaultPriority is the priority assigned to encoders registered without an
// explicit one. Priority only breaks ties between candidates the client rated
// with equal quality.
const DefaultPriority = 1.0

// DeflatePriority is the default priority of the raw DEFLATE coding. It sits
// below gzip because a handful of clients mishandle the unframed container.
const DeflatePriority = 0.9

// Condition decides whether a concrete response is eligible for compression.
//
// Conditions must be total functions: when the fact they inspect is missing
// (for example an absent Content-Type), they must settle on a deterministic
// boolean instead of failing. A panicking condition aborts transformation,
// which mirrors a configuration bug rather than a data bug.
type Condition func(*response.Response) bool

// EncoderConfig pairs a registered encoder with its eligibility conditions
// and its negotiation priority. Configs are immutable once built and shared
// read-only across all concurrent requests.
type EncoderConfig struct {
	name       string
	encoder    encoding.Encoder
	conditions []Condition
	priority   float64
}

// Name returns the name the encoder was registered under, which is also the
// Content-Encoding value written when this encoder is selected.
func (c *EncoderConfig) Name() string { return c.name }

// Encoder returns the underlying capability.
func (c *EncoderConfig) Encoder() encoding.Encoder { return c.encoder }

// Priority returns the server-side tie-break weight.
func (c *EncoderConfig) Priority() float64 { return c.priority }

// eligible reports whether every condition accepts resp, short-circuiting on
// the first rejection.
func (c *EncoderConfig) eligible(resp *response.Response) bool {
	for _, cond := range c.conditions {
		if !cond(resp) {
			return false
		}
	}

	return true
}

// RegisterOption configures a single encoder registration.
type RegisterOption = options.Option[*EncoderConfig]

// WithPriority sets the encoder's negotiation priority. Negative priorities
// are rejected at registration time.
func WithPriority(priority float64) RegisterOption {
	return options.New(func(c *EncoderConfig) error {
		if priority < 0 {
			return fmt.Errorf("%w: %v", errs.ErrInvalidPriority, priority)
		}
		c.priority = priority

		return nil
	})
}

// WithCondition appends an eligibility condition. Conditions are evaluated in
// registration order against the concrete response.
func WithCondition(cond Condition) RegisterOption {
	return options.NoError(func(c *EncoderConfig) {
		c.conditions = append(c.conditions, cond)
	})
}

// Builder accumulates encoder registrations and global conditions, then
// freezes them into an immutable Policy.
//
// Builders are configuration-time objects and are not safe for concurrent
// use; the Policy they produce is.
type Builder struct {
	encoders map[string]*EncoderConfig
	order    []string
	global   []Condition
	frozen   bool
}

// NewBuilder creates an empty policy builder.
func NewBuilder() *Builder {
	return &Builder{encoders: make(map[string]*EncoderConfig)}
}

// Register adds an encoder under the given name.
//
// Registration errors are programmer errors: callers should treat them as
// fatal at startup. Returns errs.ErrInvalidName for a blank name,
// errs.ErrDuplicateEncoder for a name already taken, and errs.ErrPolicyFrozen
// after Build has been called.
func (b *Builder) Register(name string, enc encoding.Encoder, opts ...RegisterOption) error {
	if b.frozen {
		return fmt.Errorf("%w: cannot register %q", errs.ErrPolicyFrozen, name)
	}
	if strings.TrimSpace(name) == "" {
		return errs.ErrInvalidName
	}
	if _, ok := b.encoders[name]; ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateEncoder, name)
	}

	cfg := &EncoderConfig{
		name:     name,
		encoder:  enc,
		priority: DefaultPriority,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	b.encoders[name] = cfg
	b.order = append(b.order, name)

	return nil
}

// RegisterIdentity registers the no-op coding under "identity".
func (b *Builder) RegisterIdentity(opts ...RegisterOption) error {
	return b.Register(encoding.TokenIdentity, encoding.NewIdentityEncoder(), opts...)
}

// RegisterGzip registers the framed gzip coding at the given level.
func (b *Builder) RegisterGzip(level int, opts ...RegisterOption) error {
	return b.Register(encoding.TokenGzip, encoding.NewGzipEncoder(level), opts...)
}

// RegisterDeflate registers the raw DEFLATE coding at the given level with
// its documented default priority of 0.9.
func (b *Builder) RegisterDeflate(level int, opts ...RegisterOption) error {
	opts = append([]RegisterOption{WithPriority(DeflatePriority)}, opts...)
	return b.Register(encoding.TokenDeflate, encoding.NewDeflateEncoder(level), opts...)
}

// RegisterBrotli registers the brotli coding at the given quality level.
func (b *Builder) RegisterBrotli(level int, opts ...RegisterOption) error {
	return b.Register(encoding.TokenBrotli, encoding.NewBrotliEncoder(level), opts...)
}

// RegisterZstd registers the zstd coding at the given level.
func (b *Builder) RegisterZstd(level int, opts ...RegisterOption) error {
	return b.Register(encoding.TokenZstd, encoding.NewZstdEncoder(level), opts...)
}

// RegisterLZ4 registers the lz4 coding at the given level.
func (b *Builder) RegisterLZ4(level int, opts ...RegisterOption) error {
	return b.Register(encoding.TokenLZ4, encoding.NewLZ4Encoder(level), opts...)
}

// RegisterSnappy registers the snappy coding.
func (b *Builder) RegisterSnappy(opts ...RegisterOption) error {
	return b.Register(encoding.TokenSnappy, encoding.NewSnappyEncoder(), opts...)
}

// AddCondition appends a global condition that every response must pass
// before any encoder is considered.
func (b *Builder) AddCondition(cond Condition) *Builder {
	if !b.frozen {
		b.global = append(b.global, cond)
	}

	return b
}

// Build freezes the builder into an immutable Policy. Further registrations
// fail with errs.ErrPolicyFrozen.
//
// If no encoders were registered at all, the policy is populated with the
// defaults: identity (priority 1.0), gzip (priority 1.0) and deflate
// (priority 0.9). Population is all-or-nothing: registering any encoder,
// default or not, disables it.
func (b *Builder) Build() *Policy {
	b.frozen = true

	if len(b.order) == 0 {
		b.frozen = false
		// These registrations cannot fail: names are fixed and distinct.
		_ = b.RegisterIdentity()
		_ = b.RegisterGzip(DefaultGzipLevel)
		_ = b.RegisterDeflate(DefaultDeflateLevel)
		b.frozen = true
	}

	p := &Policy{
		encoders: make([]*EncoderConfig, 0, len(b.order)),
		byName:   make(map[string]*EncoderConfig, len(b.order)),
		global:   append([]Condition(nil), b.global...),
	}
	for _, name := range b.order {
		cfg := b.encoders[name]
		p.encoders = append(p.encoders, cfg)
		p.byName[name] = cfg
	}

	return p
}

// Policy is a frozen encoder registry plus global conditions. It is built
// once at startup and read without synchronization by all requests.
type Policy struct {
	encoders []*EncoderConfig // registration order
	byName   map[string]*EncoderConfig
	global   []Condition
}

// Encoders returns the registered configs in registration order.
func (p *Policy) Encoders() []*EncoderConfig {
	return append([]*EncoderConfig(nil), p.encoders...)
}

// Encoder looks up a config by registered name.
func (p *Policy) Encoder(name string) (*EncoderConfig, bool) {
	cfg, ok := p.byName[name]
	return cfg, ok
}
