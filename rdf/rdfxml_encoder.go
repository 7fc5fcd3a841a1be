package rdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// rdfxmlWriter renders a graph as tag notation: one rdf:Description per
// subject holding that subject's properties in Sorted order.
type rdfxmlWriter struct {
	buf      bytes.Buffer
	indent   string
	prefixes map[string]string
	nsToPref map[string]string
	autoSeq  int
}

func writeRDFXML(w io.Writer, g *Graph, opts Options) error {
	prefixes := DefaultPrefixes()
	for prefix, ns := range g.prefixes {
		if prefix == "" || !isQNameLocal(prefix) {
			continue
		}
		prefixes[prefix] = ns
	}
	e := &rdfxmlWriter{
		indent:   opts.Indent,
		prefixes: prefixes,
		nsToPref: make(map[string]string, len(prefixes)),
	}
	// Sorted order makes the smallest prefix win when two share a namespace.
	keys := sortedPrefixKeys(prefixes)
	for i := len(keys) - 1; i >= 0; i-- {
		e.nsToPref[prefixes[keys[i]]] = keys[i]
	}

	e.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	e.buf.WriteString("<rdf:RDF")
	for _, prefix := range keys {
		e.buf.WriteString(` xmlns:` + prefix + `="` + escapeXMLAttr(prefixes[prefix]) + `"`)
	}
	e.buf.WriteString(">\n")

	triples := g.Sorted()
	for start := 0; start < len(triples); {
		end := start + 1
		for end < len(triples) && triples[end].S == triples[start].S {
			end++
		}
		if err := e.writeDescription(triples[start:end]); err != nil {
			return err
		}
		start = end
	}

	e.buf.WriteString("</rdf:RDF>\n")
	_, err := w.Write(e.buf.Bytes())
	return err
}

func (e *rdfxmlWriter) writeDescription(triples []Triple) error {
	subjectAttrs, err := rdfxmlSubjectAttrs(triples[0].S)
	if err != nil {
		return err
	}
	e.buf.WriteString(e.indent + "<rdf:Description " + subjectAttrs + ">\n")
	for _, t := range triples {
		if err := e.writeProperty(t); err != nil {
			return err
		}
	}
	e.buf.WriteString(e.indent + "</rdf:Description>\n")
	return nil
}

func (e *rdfxmlWriter) writeProperty(t Triple) error {
	predicate, predicateNS, err := e.predicateQName(t.P.Value)
	if err != nil {
		return err
	}
	prefix := strings.Repeat(e.indent, 2) + "<" + predicate + predicateNS
	switch obj := t.O.(type) {
	case IRI:
		e.buf.WriteString(prefix + ` rdf:resource="` + escapeXMLAttr(obj.Value) + `"/>` + "\n")
	case BlankNode:
		e.buf.WriteString(prefix + ` rdf:nodeID="` + escapeXMLAttr(obj.ID) + `"/>` + "\n")
	case Literal:
		attrs := ""
		if obj.Lang != "" {
			attrs = ` xml:lang="` + escapeXMLAttr(obj.Lang) + `"`
		} else if obj.Datatype.Value != "" {
			attrs = ` rdf:datatype="` + escapeXMLAttr(obj.Datatype.Value) + `"`
		}
		e.buf.WriteString(prefix + attrs + ">" + escapeXML(obj.Lexical) + "</" + predicate + ">\n")
	default:
		return fmt.Errorf("rdfxml: unsupported object type %T", t.O)
	}
	return nil
}

func escapeXML(value string) string {
	replacer := strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
		`'`, "&apos;",
	)
	return replacer.Replace(value)
}

func escapeXMLAttr(value string) string {
	return escapeXML(value)
}

func rdfxmlSubjectAttrs(term Term) (string, error) {
	switch value := term.(type) {
	case IRI:
		return `rdf:about="` + escapeXMLAttr(value.Value) + `"`, nil
	case BlankNode:
		return `rdf:nodeID="` + escapeXMLAttr(value.ID) + `"`, nil
	default:
		return "", fmt.Errorf("rdfxml: unsupported subject type %T", term)
	}
}

// predicateQName abbreviates a predicate for use as an element name. A
// namespace missing from the root gets an ns<N> prefix declared on the element.
func (e *rdfxmlWriter) predicateQName(iri string) (string, string, error) {
	ns, local, ok := splitIRIForQName(iri)
	if !ok {
		return "", "", fmt.Errorf("rdfxml: unable to abbreviate predicate IRI %q", iri)
	}
	if prefix, ok := e.nsToPref[ns]; ok {
		if _, declared := e.prefixes[prefix]; declared {
			return prefix + ":" + local, "", nil
		}
		return prefix + ":" + local, ` xmlns:` + prefix + `="` + escapeXMLAttr(ns) + `"`, nil
	}
	prefix := fmt.Sprintf("ns%d", e.autoSeq)
	for {
		if _, taken := e.prefixes[prefix]; !taken {
			break
		}
		e.autoSeq++
		prefix = fmt.Sprintf("ns%d", e.autoSeq)
	}
	e.autoSeq++
	e.nsToPref[ns] = prefix
	return prefix + ":" + local, ` xmlns:` + prefix + `="` + escapeXMLAttr(ns) + `"`, nil
}

// splitIRIForQName splits iri after its last '/' or '#'. When the remainder is
// not an XML name, the longest suffix of it that is one becomes the local part.
func splitIRIForQName(iri string) (string, string, bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx <= 0 || idx+1 >= len(iri) {
		return "", "", false
	}
	for i := idx + 1; i < len(iri); i++ {
		if isQNameLocal(iri[i:]) {
			return iri[:i], iri[i:], true
		}
	}
	return "", "", false
}

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
