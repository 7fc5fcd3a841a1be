package mapping

import (
	"fmt"
	"slices"
	"strings"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Decode reads the record of type R described by subject in g. When subject is
// nil the subject given with WithSubject is used, and failing that it is
// inferred with InferSubject.
//
// Nested records are decoded from the same graph. Objects that cannot be
// converted to a field's type are skipped with a warning; a literal where a
// nested record is expected fails with ErrTypeMismatch.
func Decode[R Record](g *rdf.Graph, subject rdf.Term, opts ...Option) (R, error) {
	var zero R
	def := zero.GraphType()
	rec, err := DecodeAs(g, subject, def, opts...)
	if err != nil {
		return zero, err
	}
	out, ok := rec.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s constructor returned %T, want %T", ErrNotRecord, def.Name, rec, zero)
	}
	return out, nil
}

// DecodeAs is Decode for a type known only by its definition.
func DecodeAs(g *rdf.Graph, subject rdf.Term, def *TypeDef, opts ...Option) (Record, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil type definition", ErrNotRecord)
	}
	o := newOptions(opts)
	if subject == nil {
		subject = o.subject
	}
	if subject == nil {
		var err error
		if subject, err = InferSubject(g, def); err != nil {
			return nil, err
		}
	}
	d := &decoder{
		graph: g,
		opts:  o,
		seen:  make(map[decodeKey]Record),
	}
	return d.decode(subject, def)
}

type decodeKey struct {
	subject rdf.Term
	def     *TypeDef
}

type decoder struct {
	graph *rdf.Graph
	opts  *options
	// seen maps each decoded node to its record so that shared and cyclic
	// references resolve to the same instance.
	seen map[decodeKey]Record
}

func (d *decoder) decode(subject rdf.Term, def *TypeDef) (Record, error) {
	key := decodeKey{subject: subject, def: def}
	if rec, ok := d.seen[key]; ok {
		return rec, nil
	}
	s, err := d.opts.registry.Schema(def)
	if err != nil {
		return nil, err
	}
	rec := def.New()
	if rec == nil || !s.owns(rec) {
		return nil, fmt.Errorf("%w: %s constructor returned %T", ErrNotRecord, def.Name, rec)
	}
	d.seen[key] = rec

	for _, f := range s.Fields {
		objects := sortedObjects(d.graph, subject, f.Predicate)
		if len(objects) == 0 {
			continue
		}
		values := make([]any, 0, len(objects))
		for _, obj := range objects {
			v, ok, err := d.value(subject, obj, f, def)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			values = append(values, v)
			if !f.Multi {
				break
			}
		}
		if err := f.slot.store(rec, values); err != nil {
			return nil, err
		}
	}

	if s.idSlot != nil && !s.idMapped {
		if iri, ok := subject.(rdf.IRI); ok {
			id := identifierFromSubject(iri, def, d.opts.base)
			v, err := s.idSlot.convert(id, nil)
			if err != nil {
				return nil, fmt.Errorf("%s identifier %q: %w", def.Name, id, err)
			}
			if err := s.idSlot.store(rec, []any{v}); err != nil {
				return nil, err
			}
		}
	}

	d.opts.logger.Debug().
		Str("type", def.Name).
		Str("subject", subject.String()).
		Msg("decoded record")
	return rec, nil
}

// value converts one object for field f. ok is false when the object was
// skipped because it does not convert; err is set only for failures that abort
// the decode.
func (d *decoder) value(subject, obj rdf.Term, f FieldDescriptor, def *TypeDef) (v any, ok bool, err error) {
	fieldErr := func(err error) error {
		return &FieldError{Type: def.Name, Field: f.Name, Subject: subject, Predicate: f.Predicate, Err: err}
	}

	var src any
	switch {
	case f.Kind == KindRecord && rdf.IsResource(obj):
		if src, err = d.decode(obj, f.Def); err != nil {
			return nil, false, err
		}
	case f.Kind == KindRef && rdf.IsResource(obj) && d.graph.HasSubject(obj):
		if src, err = d.decode(obj, f.Def); err != nil {
			return nil, false, err
		}
	case f.Parser != nil:
		if src, err = f.Parser(obj); err != nil {
			d.degraded(subject, obj, f, def, err)
			return nil, false, nil
		}
	case f.Kind == KindRecord:
		return nil, false, fieldErr(fmt.Errorf("%w: literal %s where %s expected", ErrTypeMismatch, obj, f.Def.Name))
	}

	v, err = f.slot.convert(src, obj)
	if err != nil {
		if f.Kind == KindRecord {
			return nil, false, fieldErr(fmt.Errorf("%w: %v", ErrTypeMismatch, err))
		}
		d.degraded(subject, obj, f, def, err)
		return nil, false, nil
	}
	return v, true, nil
}

func (d *decoder) degraded(subject, obj rdf.Term, f FieldDescriptor, def *TypeDef, err error) {
	d.opts.logger.Warn().
		Err(err).
		Str("type", def.Name).
		Str("field", f.Name).
		Str("subject", subject.String()).
		Str("object", obj.String()).
		Msg("skipping value that does not convert")
}

// sortedObjects collects the objects of subject/predicate in string order, so
// that single-valued fields pick the same object on every decode.
func sortedObjects(g *rdf.Graph, subject rdf.Term, predicate rdf.IRI) []rdf.Term {
	var objects []rdf.Term
	for o := range g.Objects(subject, predicate) {
		objects = append(objects, o)
	}
	slices.SortFunc(objects, func(a, b rdf.Term) int {
		return strings.Compare(a.String(), b.String())
	})
	return objects
}
