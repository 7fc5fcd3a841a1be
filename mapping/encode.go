package mapping

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Encode adds rec, and every record it references, to g and returns rec's
// subject.
//
// The triples of one record are added together: if any of its fields cannot be
// converted none of them are added. Records nested under it that were encoded
// before the failure stay in the graph.
//
// A record reached twice during one call is encoded once; later references
// reuse its subject, so cyclic record graphs terminate. Records must therefore
// be pointers.
func Encode(g *rdf.Graph, rec Record, opts ...Option) (rdf.Term, error) {
	e := &encoder{
		graph:   g,
		opts:    newOptions(opts),
		visited: make(map[Record]rdf.Term),
	}
	return e.encode(rec)
}

type encoder struct {
	graph   *rdf.Graph
	opts    *options
	visited map[Record]rdf.Term
}

func (e *encoder) encode(rec Record) (rdf.Term, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrNotRecord)
	}
	def := rec.GraphType()
	if def == nil {
		return nil, fmt.Errorf("%w: %T has no type definition", ErrNotRecord, rec)
	}
	if subject, ok := e.visited[rec]; ok {
		return subject, nil
	}
	s, err := e.opts.registry.Schema(def)
	if err != nil {
		return nil, err
	}
	if !s.owns(rec) {
		return nil, fmt.Errorf("%w: %T is nil or not a %s", ErrNotRecord, rec, def.Name)
	}

	subject, err := resolveSubject(rec, s, e.opts)
	if err != nil {
		return nil, err
	}
	e.visited[rec] = subject

	var pending []rdf.Triple
	if def.Type != "" {
		pending = append(pending, rdf.NewTriple(subject, rdf.RDFType, rdf.IRI{Value: def.Type}))
	}
	for _, f := range s.Fields {
		for _, item := range f.slot.get(rec) {
			obj, err := e.toTerm(item, f)
			if err != nil {
				return nil, &FieldError{Type: def.Name, Field: f.Name, Subject: subject, Predicate: f.Predicate, Err: err}
			}
			if obj == nil {
				continue
			}
			pending = append(pending, rdf.NewTriple(subject, f.Predicate, obj))
		}
	}
	if err := e.graph.AddAll(pending...); err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", def.Name, subject, err)
	}

	for prefix, ns := range rdf.DefaultPrefixes() {
		e.graph.Bind(prefix, ns)
	}
	for prefix, ns := range def.Prefixes {
		e.graph.Bind(prefix, ns)
	}

	e.opts.logger.Debug().
		Str("type", def.Name).
		Str("subject", subject.String()).
		Int("triples", len(pending)).
		Msg("encoded record")
	return subject, nil
}

// toTerm converts one field item to the object of a triple. A nil term with a
// nil error means the serializer dropped the item.
func (e *encoder) toTerm(item any, f FieldDescriptor) (rdf.Term, error) {
	if f.Serializer != nil {
		v, err := f.Serializer(item)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
		item = v
	}

	switch v := item.(type) {
	case Record:
		return e.encode(v)
	case refValue:
		term, rec := v.refParts()
		if rec != nil {
			return e.encode(rec)
		}
		return term, nil
	case rdf.Term:
		return v, nil
	case lexicalValue:
		value, raw, valid := v.lexicalValue()
		if valid {
			return scalarTerm(value, f), nil
		}
		switch {
		case f.Language != "":
			return rdf.LangLiteral(raw, f.Language), nil
		case !f.Datatype.IsZero():
			return rdf.TypedLiteral(raw, f.Datatype), nil
		default:
			return rdf.TypedLiteral(raw, defaultDatatype(basicValue(value))), nil
		}
	}
	return scalarTerm(item, f), nil
}

// defaultDatatype is the datatype written for a Go value when the field
// declares none. Strings and unknown types have no datatype.
func defaultDatatype(v any) rdf.IRI {
	switch v.(type) {
	case bool:
		return rdf.XSDBoolean
	case int64, uint64:
		return rdf.XSDInteger
	case float32, float64:
		return rdf.XSDDouble
	case time.Time:
		return rdf.XSDDateTime
	case []byte:
		return rdf.XSDBase64Binary
	case uuid.UUID:
		return rdf.XSDString
	}
	return rdf.IRI{}
}

// scalarTerm writes named scalar types as their underlying value.
func scalarTerm(v any, f FieldDescriptor) rdf.Term {
	v = basicValue(v)
	dt := f.Datatype
	if dt.IsZero() {
		dt = defaultDatatype(v)
	}
	switch x := v.(type) {
	case []byte:
		return rdf.TypedLiteral(base64.StdEncoding.EncodeToString(x), rdf.XSDBase64Binary)
	case time.Time:
		return rdf.TypedLiteral(rdf.FormatTemporal(x, dt), dt)
	case bool:
		return rdf.TypedLiteral(strconv.FormatBool(x), dt)
	case int64:
		return rdf.TypedLiteral(strconv.FormatInt(x, 10), dt)
	case uint64:
		return rdf.TypedLiteral(strconv.FormatUint(x, 10), dt)
	case float32:
		return rdf.TypedLiteral(formatFloat(float64(x), 32, dt), dt)
	case float64:
		return rdf.TypedLiteral(formatFloat(x, 64, dt), dt)
	case uuid.UUID:
		return rdf.TypedLiteral(x.String(), dt)
	case string:
		return stringTerm(x, f)
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err == nil {
			return stringTerm(string(text), f)
		}
	case fmt.Stringer:
		return stringTerm(x.String(), f)
	}
	return stringTerm(fmt.Sprint(v), f)
}

func formatFloat(f float64, bits int, dt rdf.IRI) string {
	if dt == rdf.XSDDecimal {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// stringTerm applies, in order: the field language, the field datatype, and
// for URI fields a named node when the text looks absolute.
func stringTerm(s string, f FieldDescriptor) rdf.Term {
	switch {
	case f.Language != "":
		return rdf.LangLiteral(s, f.Language)
	case !f.Datatype.IsZero():
		return rdf.TypedLiteral(s, f.Datatype)
	case f.Kind == KindURI && LooksLikeURI(s):
		return rdf.IRI{Value: s}
	default:
		return rdf.PlainLiteral(s)
	}
}
