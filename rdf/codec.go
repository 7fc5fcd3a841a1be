package rdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLineBytes bounds a single line of line-notation input.
const DefaultMaxLineBytes = 1 << 20

// Option configures parser/encoder behavior.
type Option func(*Options)

// Options configures parser/encoder behavior.
type Options struct {
	// MaxLineBytes limits the length of a parsed line. Negative disables the limit.
	MaxLineBytes int
	// Indent is the per-level indentation of tag notation and JSON-LD output.
	Indent string
	// CompactJSONLD compacts JSON-LD output against the graph's prefix table.
	CompactJSONLD bool
}

func defaultOptions() Options {
	return Options{
		MaxLineBytes:  DefaultMaxLineBytes,
		Indent:        "  ",
		CompactJSONLD: true,
	}
}

// OptMaxLineBytes sets the maximum line size limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

// OptIndent sets the indentation used by tag notation and JSON-LD output.
func OptIndent(indent string) Option {
	return func(opts *Options) {
		opts.Indent = indent
	}
}

// OptExpandedJSONLD disables JSON-LD compaction; output uses full IRIs.
func OptExpandedJSONLD() Option {
	return func(opts *Options) {
		opts.CompactJSONLD = false
	}
}

// Serialize writes the graph to w in the given format. Unsupported formats fail
// with ErrUnsupportedFormat before anything is written. Output is deterministic
// for a given graph and prefix table.
//
// FormatRDFXML writes predicates as element names, so every predicate must end
// in an XML name after its last '/' or '#' (http://example.org/v/p1 works,
// http://example.org/v/1 does not). Otherwise Serialize fails and writes
// nothing.
func Serialize(w io.Writer, g *Graph, format Format, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatTurtle:
		err = writeTurtle(&buf, g)
	case FormatRDFXML:
		err = writeRDFXML(&buf, g, options)
	case FormatJSONLD:
		err = writeJSONLD(&buf, g, options)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// SerializeString renders the graph in the given format.
func SerializeString(g *Graph, format Format, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Serialize(&sb, g, format, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Parse reads statements in the given format into g. Only FormatTurtle is
// supported; anything else fails with ErrUnsupportedFormat before reading.
//
// Parsing is all-or-nothing: on error g is left as it was.
func Parse(r io.Reader, g *Graph, format Format, opts ...Option) error {
	if !format.CanParse() {
		return fmt.Errorf("%w: cannot parse %q", ErrUnsupportedFormat, format)
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	scratch := NewGraph()
	for prefix, ns := range g.prefixes {
		scratch.prefixes[prefix] = ns
	}
	dec := newTurtleDecoder(r, scratch, options)
	if err := dec.decode(); err != nil {
		return err
	}
	g.Merge(scratch)
	return nil
}

// ParseString parses text into a new graph.
func ParseString(text string, format Format, opts ...Option) (*Graph, error) {
	g := NewGraph()
	if err := Parse(strings.NewReader(text), g, format, opts...); err != nil {
		return nil, err
	}
	return g, nil
}
