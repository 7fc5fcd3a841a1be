package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// writeJSONLD converts the graph to JSON-LD through its N-Quads rendering.
// With CompactJSONLD the document is compacted against the prefix table, so
// bound namespaces appear as prefixed names.
func writeJSONLD(w io.Writer, g *Graph, opts Options) error {
	var nquads strings.Builder
	for _, t := range g.Sorted() {
		nquads.WriteString(t.String())
		nquads.WriteByte('\n')
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions("")
	goldOpts.Format = "application/n-quads"
	goldOpts.UseNativeTypes = false
	doc, err := proc.FromRDF(nquads.String(), goldOpts)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}

	if opts.CompactJSONLD && len(g.prefixes) > 0 {
		context := make(map[string]interface{}, len(g.prefixes))
		for _, prefix := range sortedPrefixKeys(g.prefixes) {
			if prefix == "" {
				continue
			}
			context[prefix] = g.prefixes[prefix]
		}
		compactOpts := ld.NewJsonLdOptions("")
		compacted, err := proc.Compact(doc, map[string]interface{}{"@context": context}, compactOpts)
		if err != nil {
			return fmt.Errorf("jsonld: %w", err)
		}
		doc = compacted
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", opts.Indent)
	return enc.Encode(doc)
}
