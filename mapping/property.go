package mapping

import "github.com/geoknoesis/rdfmodel/rdf"

// GraphProperty maps a field to a predicate. Attach it to a field through
// FieldDecl.Meta or an Annotated shape; fields without one are not mapped.
type GraphProperty struct {
	Predicate rdf.IRI
	// Datatype overrides the inferred literal datatype.
	Datatype rdf.IRI
	// Language tags string values. It cannot be combined with Datatype.
	Language string
	// Serializer replaces each item before conversion to a term. Returning a
	// nil value skips the item.
	Serializer func(any) (any, error)
	// Parser converts each object term before it is stored in the field.
	Parser func(rdf.Term) (any, error)
}

// PropertyOption configures a GraphProperty.
type PropertyOption func(*GraphProperty)

// Property returns the annotation mapping a field to predicate.
func Property(predicate string, opts ...PropertyOption) GraphProperty {
	p := GraphProperty{Predicate: rdf.IRI{Value: predicate}}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Datatype sets the literal datatype for the field's values.
func Datatype(iri string) PropertyOption {
	return func(p *GraphProperty) {
		p.Datatype = rdf.IRI{Value: iri}
	}
}

// Language tags the field's string values.
func Language(tag string) PropertyOption {
	return func(p *GraphProperty) {
		p.Language = tag
	}
}

// WithSerializer installs a custom item serializer.
func WithSerializer(fn func(any) (any, error)) PropertyOption {
	return func(p *GraphProperty) {
		p.Serializer = fn
	}
}

// WithParser installs a custom object parser.
func WithParser(fn func(rdf.Term) (any, error)) PropertyOption {
	return func(p *GraphProperty) {
		p.Parser = fn
	}
}

func findProperty(meta []any) (GraphProperty, bool) {
	for _, m := range meta {
		switch p := m.(type) {
		case GraphProperty:
			return p, true
		case *GraphProperty:
			if p != nil {
				return *p, true
			}
		}
	}
	return GraphProperty{}, false
}
