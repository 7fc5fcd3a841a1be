package rdf

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Graph is an in-memory set of triples plus a namespace prefix table.
//
// Adding a triple that is already present is a no-op. Iteration order over the
// set is unspecified and may differ between calls; use Sorted when a stable
// order is needed.
//
// A Graph is not safe for concurrent mutation. Build one per encode/decode call
// or guard a shared graph with external locking.
type Graph struct {
	triples  map[Triple]struct{}
	prefixes map[string]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		triples:  make(map[Triple]struct{}),
		prefixes: make(map[string]string),
	}
}

// Add inserts a triple. Adding an existing triple leaves the graph unchanged.
func (g *Graph) Add(t Triple) error {
	if err := t.Validate(); err != nil {
		return err
	}
	g.triples[t] = struct{}{}
	return nil
}

// AddAll validates every triple before inserting any of them, so a failed call
// leaves the graph untouched.
func (g *Graph) AddAll(triples ...Triple) error {
	for _, t := range triples {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, t := range triples {
		g.triples[t] = struct{}{}
	}
	return nil
}

// Contains reports whether the triple is in the graph.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples yields every triple in unspecified order.
func (g *Graph) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for t := range g.triples {
			if !yield(t) {
				return
			}
		}
	}
}

// Sorted returns the triples ordered by the string projections of subject,
// predicate and object.
func (g *Graph) Sorted() []Triple {
	out := slices.Collect(maps.Keys(g.triples))
	slices.SortFunc(out, compareTriples)
	return out
}

func compareTriples(a, b Triple) int {
	return cmp.Or(
		cmp.Compare(a.S.String(), b.S.String()),
		cmp.Compare(a.P.Value, b.P.Value),
		cmp.Compare(a.O.String(), b.O.String()),
	)
}

// Objects yields the objects of triples matching subject and predicate. A nil
// subject or a zero predicate matches anything.
func (g *Graph) Objects(subject Term, predicate IRI) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for t := range g.triples {
			if subject != nil && t.S != subject {
				continue
			}
			if !predicate.IsZero() && t.P != predicate {
				continue
			}
			if !yield(t.O) {
				return
			}
		}
	}
}

// Subjects yields the subjects of triples matching predicate and object. A zero
// predicate or a nil object matches anything. A subject is yielded once per
// matching triple.
func (g *Graph) Subjects(predicate IRI, object Term) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for t := range g.triples {
			if !predicate.IsZero() && t.P != predicate {
				continue
			}
			if object != nil && t.O != object {
				continue
			}
			if !yield(t.S) {
				return
			}
		}
	}
}

// Value returns the first object of subject/predicate, or def when there is none.
//
// Which object is "first" is implementation-defined: for a multi-valued
// predicate repeated calls may return different objects. Callers needing a
// stable answer must collect Objects and choose themselves.
func (g *Graph) Value(subject Term, predicate IRI, def Term) Term {
	for o := range g.Objects(subject, predicate) {
		return o
	}
	return def
}

// HasSubject reports whether any triple has the given subject.
func (g *Graph) HasSubject(subject Term) bool {
	for t := range g.triples {
		if t.S == subject {
			return true
		}
	}
	return false
}

// Merge adds every triple and prefix binding of other into g.
func (g *Graph) Merge(other *Graph) {
	for t := range other.triples {
		g.triples[t] = struct{}{}
	}
	for prefix, ns := range other.prefixes {
		g.prefixes[prefix] = ns
	}
}

// Bind maps prefix to a namespace base, replacing any previous binding.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Namespace returns the base bound to prefix.
func (g *Graph) Namespace(prefix string) (string, bool) {
	ns, ok := g.prefixes[prefix]
	return ns, ok
}

// Namespaces returns a copy of the prefix table.
func (g *Graph) Namespaces() map[string]string {
	return maps.Clone(g.prefixes)
}

// QName abbreviates iri with the first bound namespace (in prefix order) that
// is a textual prefix of it, or returns the full IRI when none matches.
func (g *Graph) QName(iri IRI) string {
	for _, prefix := range sortedPrefixKeys(g.prefixes) {
		ns := g.prefixes[prefix]
		if ns != "" && strings.HasPrefix(iri.Value, ns) {
			return prefix + ":" + iri.Value[len(ns):]
		}
	}
	return iri.Value
}

// Expand resolves a prefixed name such as "foaf:name" against the prefix table.
func (g *Graph) Expand(name string) (IRI, error) {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return IRI{}, fmt.Errorf("%w: %q is not a prefixed name", ErrMalformedText, name)
	}
	ns, ok := g.prefixes[prefix]
	if !ok {
		return IRI{}, fmt.Errorf("%w %q in %q", ErrUnknownPrefix, prefix, name)
	}
	return IRI{Value: ns + local}, nil
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	return slices.Sorted(maps.Keys(prefixes))
}
