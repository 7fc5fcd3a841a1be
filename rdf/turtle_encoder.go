package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeTurtle emits the prefix table in prefix order, a blank line when the
// graph has triples, then one statement per triple in Sorted order. Terms are
// written in full so the output parses back without the prefix table.
func writeTurtle(w io.Writer, g *Graph) error {
	writer := bufio.NewWriter(w)
	for _, prefix := range sortedPrefixKeys(g.prefixes) {
		if _, err := writer.WriteString("@prefix " + prefix + ": <" + g.prefixes[prefix] + "> .\n"); err != nil {
			return err
		}
	}
	triples := g.Sorted()
	if len(triples) > 0 {
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	for _, t := range triples {
		if _, err := writer.WriteString(t.String() + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return quoted + "^^" + renderIRI(value.Datatype)
		}
		return quoted
	default:
		return ""
	}
}

// escapeLiteral is the inverse of unescapeLiteral for the characters that
// would break a single-line statement.
func escapeLiteral(value string) string {
	if !strings.ContainsAny(value, "\\\"\n\r\t\b\f") && !hasControl(value) {
		return value
	}
	var builder strings.Builder
	for _, r := range value {
		switch r {
		case '\\':
			builder.WriteString(`\\`)
		case '"':
			builder.WriteString(`\"`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		case '\b':
			builder.WriteString(`\b`)
		case '\f':
			builder.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&builder, `\u%04X`, r)
				continue
			}
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func hasControl(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] == 0x7f {
			return true
		}
	}
	return false
}
