package mapping

import "fmt"

// Shape describes the declared type of a field: an element type wrapped in any
// number of optional, list and annotation layers.
type Shape interface {
	isShape()
}

// Scalar is the element type left after unwrapping. Def is the nested type
// definition for KindRecord and KindRef.
type Scalar struct {
	Kind Kind
	Def  *TypeDef
}

// OptionalOf marks a value that may be absent.
type OptionalOf struct {
	Elem Shape
}

// ListOf marks a multi-valued field.
type ListOf struct {
	Elem Shape
}

// Annotated attaches metadata, such as a GraphProperty, to a shape.
type Annotated struct {
	Elem Shape
	Meta []any
}

func (Scalar) isShape()     {}
func (OptionalOf) isShape() {}
func (ListOf) isShape()     {}
func (Annotated) isShape()  {}

// unwrapped is a shape reduced to its element type.
type unwrapped struct {
	elem     Scalar
	multi    bool
	optional bool
	meta     []any
}

// unwrapShape peels optional, list and annotation layers until only the
// element type remains. Layers may nest in any order; a list inside a list is
// rejected.
func unwrapShape(shape Shape) (unwrapped, error) {
	var out unwrapped
	for {
		switch s := shape.(type) {
		case Scalar:
			out.elem = s
			return out, nil
		case Annotated:
			out.meta = append(out.meta, s.Meta...)
			shape = s.Elem
		case OptionalOf:
			out.optional = true
			shape = s.Elem
		case ListOf:
			if out.multi {
				return out, fmt.Errorf("nested lists are not supported")
			}
			out.multi = true
			shape = s.Elem
		case nil:
			return out, fmt.Errorf("missing element type")
		default:
			return out, fmt.Errorf("unknown shape %T", shape)
		}
	}
}
