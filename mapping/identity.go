package mapping

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// resolveSubject computes the subject of rec. The first applicable rule wins:
//
//  1. a present identifier: absolute identifiers are used as-is, relative ones
//     are qualified by the type namespace, else the base, else used bare;
//  2. the identity function, per-call before per-type, when it returns a term;
//  3. a fresh blank node when the type disables auto identifiers;
//  4. a UUID under the type namespace, or a urn:uuid IRI.
func resolveSubject(rec Record, s *Schema, o *options) (rdf.Term, error) {
	def := s.Def
	if id := identifierOf(rec, s); id != "" {
		switch {
		case LooksLikeURI(id):
			return rdf.IRI{Value: id}, nil
		case def.Namespace != "":
			return rdf.IRI{Value: def.Namespace + id}, nil
		case o.base != "":
			return rdf.IRI{Value: normaliseBase(o.base) + id}, nil
		default:
			return rdf.IRI{Value: id}, nil
		}
	}

	identity := def.Identity
	if o.identity != nil {
		identity = o.identity
	}
	if identity != nil {
		switch t := identity(rec).(type) {
		case nil:
		case rdf.IRI:
			if !t.IsZero() {
				return t, nil
			}
		case rdf.BlankNode:
			return t, nil
		default:
			return nil, fmt.Errorf("%w: identity function returned %s for %s", rdf.ErrInvalidTriple, t, def.Name)
		}
	}

	if def.DisableAutoID {
		return rdf.NewBlankNode(), nil
	}
	if def.Namespace != "" {
		return rdf.IRI{Value: def.Namespace + uuid.NewString()}, nil
	}
	return rdf.IRI{Value: "urn:uuid:" + uuid.NewString()}, nil
}

// identifierOf returns the record's identifier field as text.
func identifierOf(rec Record, s *Schema) string {
	if s.idSlot == nil {
		return ""
	}
	values := s.idSlot.get(rec)
	if len(values) == 0 {
		return ""
	}
	return lexicalForm(values[0], nil)
}

// normaliseBase makes base end in a separator so identifiers append cleanly.
func normaliseBase(base string) string {
	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, "#") {
		return base
	}
	return base + "/"
}

// identifierFromSubject strips the type namespace, or failing that the base,
// from an IRI subject. Subjects matching neither are returned whole.
func identifierFromSubject(subject rdf.IRI, def *TypeDef, base string) string {
	value := subject.Value
	if def.Namespace != "" && strings.HasPrefix(value, def.Namespace) {
		return value[len(def.Namespace):]
	}
	if base != "" {
		if b := normaliseBase(base); strings.HasPrefix(value, b) {
			return value[len(b):]
		}
	}
	return value
}
