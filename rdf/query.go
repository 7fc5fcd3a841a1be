package rdf

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// QueryRow is one row of an aggregate query result.
type QueryRow struct {
	// Key is the grouping term, or nil for an ungrouped count.
	Key Term
	// N is the aggregated count.
	N int
}

// QueryResult holds the rows of an aggregate query.
type QueryResult struct {
	// Group names the grouping variable ("type", "property"), empty for a total.
	Group string
	// Rows are sorted by the string form of Key.
	Rows []QueryRow
}

// Graph-level aggregate queries. These are the only query shapes understood by
// Query; the graph is not a general query processor.
const (
	queryCountAll      = "select (count(*) as ?n"
	queryTypeCounts    = "select ?type (count(?instance) as ?n"
	queryPropertyCount = "select ?property (count(?property) as ?n"
)

// Query runs one of the fixed aggregate queries:
//
//	SELECT (COUNT(*) AS ?n) WHERE { ?s ?p ?o }
//	SELECT ?type (COUNT(?instance) AS ?n) WHERE { ?instance a ?type } GROUP BY ?type
//	SELECT ?property (COUNT(?property) AS ?n) WHERE { ?s a ?t ; ?property ?o } GROUP BY ?property
//
// Matching is on the normalized SELECT clause. Any other text fails with
// ErrUnsupportedQuery.
func (g *Graph) Query(text string) (QueryResult, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	switch {
	case strings.Contains(normalized, queryCountAll):
		return QueryResult{Rows: []QueryRow{{N: g.Len()}}}, nil
	case strings.Contains(normalized, queryTypeCounts):
		return QueryResult{Group: "type", Rows: g.TypeCounts()}, nil
	case strings.Contains(normalized, queryPropertyCount):
		return QueryResult{Group: "property", Rows: g.PropertyCounts()}, nil
	default:
		return QueryResult{}, fmt.Errorf("%w: %q", ErrUnsupportedQuery, strings.TrimSpace(text))
	}
}

// TypeCounts counts rdf:type triples grouped by type, sorted by type.
func (g *Graph) TypeCounts() []QueryRow {
	counts := make(map[Term]int)
	for t := range g.triples {
		if t.P == RDFType {
			counts[t.O]++
		}
	}
	return sortedRows(counts)
}

// PropertyCounts counts the triples of typed subjects grouped by predicate,
// sorted by predicate. A subject is typed when it has at least one rdf:type.
func (g *Graph) PropertyCounts() []QueryRow {
	typed := make(map[Term]struct{})
	for t := range g.triples {
		if t.P == RDFType {
			typed[t.S] = struct{}{}
		}
	}
	counts := make(map[Term]int)
	for t := range g.triples {
		if _, ok := typed[t.S]; ok {
			counts[t.P]++
		}
	}
	return sortedRows(counts)
}

func sortedRows(counts map[Term]int) []QueryRow {
	rows := make([]QueryRow, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, QueryRow{Key: key, N: n})
	}
	slices.SortFunc(rows, func(a, b QueryRow) int {
		return cmp.Compare(a.Key.String(), b.Key.String())
	})
	return rows
}
