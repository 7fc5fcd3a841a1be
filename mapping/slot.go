package mapping

import (
	"fmt"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Slot reads and writes one field of a record. Slots are built with One, Opt
// and Many from an accessor returning a pointer to the field, so the engine
// never inspects record structs at run time.
type Slot interface {
	// Shape is the field's declared shape as implied by its Go type.
	Shape() Shape

	owns(rec Record) bool
	get(rec Record) []any
	convert(src any, term rdf.Term) (any, error)
	store(rec Record, values []any) error
}

// One binds a single-valued field.
func One[R Record, T any](field func(R) *T) Slot {
	return oneSlot[R, T]{field: field}
}

// Opt binds an optional field held by pointer; nil means absent.
func Opt[R Record, T any](field func(R) **T) Slot {
	return optSlot[R, T]{field: field}
}

// Many binds a multi-valued field.
func Many[R Record, T any](field func(R) *[]T) Slot {
	return manySlot[R, T]{field: field}
}

func scalarOf[T any]() Scalar {
	kind, def := kindOf[T]()
	return Scalar{Kind: kind, Def: def}
}

// present reports whether v should be written: empty values and nil nested
// records are skipped.
func present[T any](v T) bool {
	if isEmpty(v) {
		return false
	}
	if _, ok := any(v).(Record); ok {
		var zero T
		return any(v) != any(zero)
	}
	return true
}

func recordAs[R Record](rec Record) (R, bool) {
	var zero R
	r, ok := rec.(R)
	if !ok || any(r) == any(zero) {
		return zero, false
	}
	return r, true
}

type oneSlot[R Record, T any] struct {
	field func(R) *T
}

func (s oneSlot[R, T]) Shape() Shape { return scalarOf[T]() }

func (s oneSlot[R, T]) owns(rec Record) bool {
	_, ok := recordAs[R](rec)
	return ok
}

func (s oneSlot[R, T]) get(rec Record) []any {
	r, ok := recordAs[R](rec)
	if !ok {
		return nil
	}
	v := *s.field(r)
	if !present(v) {
		return nil
	}
	return []any{v}
}

func (s oneSlot[R, T]) convert(src any, term rdf.Term) (any, error) {
	return assign[T](src, term)
}

func (s oneSlot[R, T]) store(rec Record, values []any) error {
	r, ok := recordAs[R](rec)
	if !ok {
		return fmt.Errorf("%w: %T is not %T", ErrNotRecord, rec, r)
	}
	if len(values) > 0 {
		*s.field(r) = values[0].(T)
	}
	return nil
}

type optSlot[R Record, T any] struct {
	field func(R) **T
}

func (s optSlot[R, T]) Shape() Shape { return OptionalOf{Elem: scalarOf[T]()} }

func (s optSlot[R, T]) owns(rec Record) bool {
	_, ok := recordAs[R](rec)
	return ok
}

func (s optSlot[R, T]) get(rec Record) []any {
	r, ok := recordAs[R](rec)
	if !ok {
		return nil
	}
	p := *s.field(r)
	if p == nil || !present(*p) {
		return nil
	}
	return []any{*p}
}

func (s optSlot[R, T]) convert(src any, term rdf.Term) (any, error) {
	return assign[T](src, term)
}

func (s optSlot[R, T]) store(rec Record, values []any) error {
	r, ok := recordAs[R](rec)
	if !ok {
		return fmt.Errorf("%w: %T is not %T", ErrNotRecord, rec, r)
	}
	if len(values) > 0 {
		v := values[0].(T)
		*s.field(r) = &v
	}
	return nil
}

type manySlot[R Record, T any] struct {
	field func(R) *[]T
}

func (s manySlot[R, T]) Shape() Shape {
	return OptionalOf{Elem: ListOf{Elem: scalarOf[T]()}}
}

func (s manySlot[R, T]) owns(rec Record) bool {
	_, ok := recordAs[R](rec)
	return ok
}

func (s manySlot[R, T]) get(rec Record) []any {
	r, ok := recordAs[R](rec)
	if !ok {
		return nil
	}
	items := *s.field(r)
	out := make([]any, 0, len(items))
	for _, item := range items {
		if present(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s manySlot[R, T]) convert(src any, term rdf.Term) (any, error) {
	return assign[T](src, term)
}

func (s manySlot[R, T]) store(rec Record, values []any) error {
	r, ok := recordAs[R](rec)
	if !ok {
		return fmt.Errorf("%w: %T is not %T", ErrNotRecord, rec, r)
	}
	if len(values) == 0 {
		return nil
	}
	items := make([]T, 0, len(values))
	for _, v := range values {
		items = append(items, v.(T))
	}
	*s.field(r) = items
	return nil
}
