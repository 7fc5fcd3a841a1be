package mapping

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// InferSubject finds the one subject in g that a record of def can be decoded
// from: the subjects typed def.Type, or every subject when def has no type.
// It fails with ErrNoSubject when there is none and with an
// *AmbiguousSubjectError when there are several; it never picks one.
func InferSubject(g *rdf.Graph, def *TypeDef) (rdf.Term, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil type definition", ErrNotRecord)
	}
	var subjects iter.Seq[rdf.Term]
	label := def.Type
	if def.Type != "" {
		subjects = g.Subjects(rdf.RDFType, rdf.IRI{Value: def.Type})
	} else {
		subjects = g.Subjects(rdf.IRI{}, nil)
		label = def.Name
	}

	unique := make(map[rdf.Term]struct{})
	for s := range subjects {
		unique[s] = struct{}{}
	}
	candidates := make([]rdf.Term, 0, len(unique))
	for s := range unique {
		candidates = append(candidates, s)
	}
	slices.SortFunc(candidates, func(a, b rdf.Term) int {
		return strings.Compare(a.String(), b.String())
	})

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: no resource of type %s", ErrNoSubject, label)
	case 1:
		return candidates[0], nil
	default:
		return nil, &AmbiguousSubjectError{Type: label, Candidates: candidates}
	}
}
