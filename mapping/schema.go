package mapping

import (
	"errors"
	"fmt"
	"sync"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Record is a Go value that maps to a resource in a graph. Records are
// pointers to structs; GraphType must not dereference its receiver because the
// engine calls it on nil pointers to discover nested types.
type Record interface {
	GraphType() *TypeDef
}

// TypeDef describes how a record type maps to RDF. It is the registration
// handle for the type: schemas are cached per *TypeDef, so declare one
// package-level TypeDef per record type.
type TypeDef struct {
	// Name identifies the type in errors and logs.
	Name string
	// Type is the rdf:type IRI written for every instance. Empty disables the
	// type triple, and subject inference then considers every subject.
	Type string
	// Namespace qualifies relative identifiers and minted subjects.
	Namespace string
	// Prefixes are bound into the graph when an instance is encoded. They
	// override the rdf and xsd defaults.
	Prefixes map[string]string
	// IDField names the field holding the instance identifier.
	IDField string
	// DisableAutoID encodes instances without an identifier as blank nodes
	// instead of minting a UUID-based IRI.
	DisableAutoID bool
	// Identity computes the subject of instances without an identifier. A nil
	// result falls through to the default behaviour.
	Identity func(Record) rdf.Term
	// New allocates an empty instance for decoding.
	New func() Record
	// Fields lists the type's field declarations.
	Fields func() []FieldDecl
}

// FieldDecl declares one field of a record type.
type FieldDecl struct {
	Name string
	// Type is the declared shape. When nil the shape implied by Slot is used.
	Type Shape
	// Meta carries annotations, in particular a GraphProperty. Fields without
	// a GraphProperty are not mapped.
	Meta []any
	Slot Slot
}

// Field declares a field whose shape is taken from its slot.
func Field(name string, slot Slot, meta ...any) FieldDecl {
	return FieldDecl{Name: name, Slot: slot, Meta: meta}
}

// FieldDescriptor is the compiled mapping of one field.
type FieldDescriptor struct {
	Name       string
	Predicate  rdf.IRI
	Multi      bool
	Optional   bool
	Kind       Kind
	Def        *TypeDef
	Datatype   rdf.IRI
	Language   string
	Serializer func(any) (any, error)
	Parser     func(rdf.Term) (any, error)

	slot Slot
}

// Schema is the compiled, read-only field mapping of a record type.
type Schema struct {
	Def *TypeDef
	// Fields holds the mapped fields in declaration order.
	Fields []FieldDescriptor

	idSlot   Slot
	idMapped bool
}

// Field returns the descriptor of the named mapped field.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

type schemaEntry struct {
	schema *Schema
	err    error
}

// Registry caches compiled schemas by type definition. Build errors are cached
// too, so a misconfigured type fails the same way on every use.
type Registry struct {
	mu      sync.Mutex
	entries map[*TypeDef]schemaEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[*TypeDef]schemaEntry)}
}

// Schemas is the registry used when no other is configured.
var Schemas = NewRegistry()

// SchemaOf compiles def with the default registry.
func SchemaOf(def *TypeDef) (*Schema, error) {
	return Schemas.Schema(def)
}

// Schema returns the compiled schema for def, building it on first use.
func (r *Registry) Schema(def *TypeDef) (*Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil type definition", ErrNotRecord)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[def]; ok {
		return e.schema, e.err
	}
	s, err := buildSchema(def)
	r.entries[def] = schemaEntry{schema: s, err: err}
	return s, err
}

// Len reports the number of cached entries, failed builds included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func buildSchema(def *TypeDef) (*Schema, error) {
	if def.New == nil {
		return nil, &SchemaError{Type: def.Name, Err: errors.New("no constructor")}
	}
	s := &Schema{Def: def}
	var decls []FieldDecl
	if def.Fields != nil {
		decls = def.Fields()
	}

	seen := make(map[string]bool, len(decls))
	for _, decl := range decls {
		fail := func(format string, args ...any) error {
			return &SchemaError{Type: def.Name, Field: decl.Name, Err: fmt.Errorf(format, args...)}
		}
		if decl.Name == "" {
			return nil, fail("field without a name")
		}
		if seen[decl.Name] {
			return nil, fail("declared twice")
		}
		seen[decl.Name] = true
		if decl.Slot == nil {
			return nil, fail("no slot")
		}

		implied, err := unwrapShape(decl.Slot.Shape())
		if err != nil {
			return nil, fail("%v", err)
		}
		if implied.elem.Kind == KindUnsupported {
			return nil, fail("element type cannot be converted to or from RDF terms")
		}
		declared := implied
		if decl.Type != nil {
			if declared, err = unwrapShape(decl.Type); err != nil {
				return nil, fail("%v", err)
			}
			if declared.multi != implied.multi {
				return nil, fail("declared multi=%t but slot holds multi=%t", declared.multi, implied.multi)
			}
			if declared.elem.Kind != implied.elem.Kind {
				return nil, fail("declared kind %s but slot holds %s", declared.elem.Kind, implied.elem.Kind)
			}
			if declared.elem.Def == nil {
				declared.elem.Def = implied.elem.Def
			}
		}

		if decl.Name == def.IDField {
			s.idSlot = decl.Slot
			if k := implied.elem.Kind; implied.multi || (k != KindString && k != KindURI) {
				return nil, fail("identifier field must hold a single string or URI")
			}
		}

		prop, ok := findProperty(append(append([]any(nil), declared.meta...), decl.Meta...))
		if !ok {
			continue
		}
		if prop.Predicate.IsZero() {
			return nil, fail("empty predicate")
		}
		if prop.Language != "" && !prop.Datatype.IsZero() {
			return nil, fail("language %q and datatype <%s> are mutually exclusive", prop.Language, prop.Datatype.Value)
		}
		kind := declared.elem.Kind
		if (kind == KindRecord || kind == KindRef) && declared.elem.Def == nil {
			return nil, fail("nested %s without a type definition", kind)
		}
		if decl.Name == def.IDField {
			s.idMapped = true
		}
		s.Fields = append(s.Fields, FieldDescriptor{
			Name:       decl.Name,
			Predicate:  prop.Predicate,
			Multi:      declared.multi,
			Optional:   declared.optional,
			Kind:       kind,
			Def:        declared.elem.Def,
			Datatype:   prop.Datatype,
			Language:   prop.Language,
			Serializer: prop.Serializer,
			Parser:     prop.Parser,
			slot:       decl.Slot,
		})
	}

	if def.IDField != "" && s.idSlot == nil {
		return nil, &SchemaError{Type: def.Name, Field: def.IDField, Err: errors.New("identifier field is not declared")}
	}
	return s, nil
}

// owns reports whether rec is a non-nil instance of the type the schema's
// slots were built for.
func (s *Schema) owns(rec Record) bool {
	if s.idSlot != nil {
		return s.idSlot.owns(rec)
	}
	if len(s.Fields) > 0 {
		return s.Fields[0].slot.owns(rec)
	}
	return true
}
