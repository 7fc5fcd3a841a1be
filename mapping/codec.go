package mapping

import (
	"bytes"
	"fmt"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Marshal encodes rec into a fresh graph and renders it in format.
func Marshal(rec Record, format rdf.Format, opts ...Option) ([]byte, error) {
	if !format.CanSerialize() {
		return nil, fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, format)
	}
	o := newOptions(opts)
	g := rdf.NewGraph()
	if _, err := Encode(g, rec, opts...); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := rdf.Serialize(&buf, g, format, o.codec...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data and decodes a record of type R from it, from the
// subject given with WithSubject or else the inferred one.
func Unmarshal[R Record](data []byte, format rdf.Format, opts ...Option) (R, error) {
	var zero R
	o := newOptions(opts)
	g := rdf.NewGraph()
	if err := rdf.Parse(bytes.NewReader(data), g, format, o.codec...); err != nil {
		return zero, err
	}
	return Decode[R](g, o.subject, opts...)
}
