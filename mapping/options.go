package mapping

import (
	"github.com/rs/zerolog"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Option configures Encode, Decode, Marshal and Unmarshal.
type Option func(*options)

type options struct {
	base     string
	identity func(Record) rdf.Term
	subject  rdf.Term
	registry *Registry
	logger   zerolog.Logger
	codec    []rdf.Option
}

func newOptions(opts []Option) *options {
	o := &options{
		registry: Schemas,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBase sets the base IRI used to qualify relative identifiers of types
// without a namespace, and stripped from subjects when deriving identifiers.
func WithBase(base string) Option {
	return func(o *options) {
		o.base = base
	}
}

// WithIdentity overrides every type's identity function for this call.
func WithIdentity(fn func(Record) rdf.Term) Option {
	return func(o *options) {
		o.identity = fn
	}
}

// WithSubject names the subject to decode instead of inferring it.
func WithSubject(subject rdf.Term) Option {
	return func(o *options) {
		o.subject = subject
	}
}

// WithRegistry compiles schemas with r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLogger sets the logger for per-record debug output and degraded values.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCodecOptions passes options through to rdf.Parse and rdf.Serialize.
func WithCodecOptions(opts ...rdf.Option) Option {
	return func(o *options) {
		o.codec = append(o.codec, opts...)
	}
}
