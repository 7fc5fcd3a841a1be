package rdf

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestRDFXMLGroupsBySubject(t *testing.T) {
	g := NewGraph()
	g.Bind("ex", "http://example.org/")
	mustAdd(t, g,
		NewTriple(exA, exName, PlainLiteral("Alice & co")),
		NewTriple(exA, exKnow, exB),
		NewTriple(exB, exName, LangLiteral("Bob", "en")),
	)
	out, err := SerializeString(g, FormatRDFXML)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:ex="http://example.org/" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:xsd="http://www.w3.org/2001/XMLSchema#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:knows rdf:resource="http://example.org/b"/>
    <ex:name>Alice &amp; co</ex:name>
  </rdf:Description>
  <rdf:Description rdf:about="http://example.org/b">
    <ex:name xml:lang="en">Bob</ex:name>
  </rdf:Description>
</rdf:RDF>
`
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRDFXMLDatatypeBlankNodeAndAutoPrefix(t *testing.T) {
	g := NewGraph()
	other := IRI{Value: "http://other.example/vocab#score"}
	mustAdd(t, g,
		NewTriple(BlankNode{ID: "n1"}, other, TypedLiteral("7", XSDInteger)),
		NewTriple(exA, IRI{Value: "http://other.example/vocab#friend"}, BlankNode{ID: "n1"}),
	)
	out, err := SerializeString(g, FormatRDFXML)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, fragment := range []string{
		`<rdf:Description rdf:nodeID="n1">`,
		`<ns0:score xmlns:ns0="http://other.example/vocab#" rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">7</ns0:score>`,
		`<ns0:friend xmlns:ns0="http://other.example/vocab#" rdf:nodeID="n1"/>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("missing %q in:\n%s", fragment, out)
		}
	}
	if err := xml.Unmarshal([]byte(out), new(struct{})); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
}

func TestRDFXMLRejectsUnabbreviablePredicate(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, NewTriple(exA, IRI{Value: "http://example.org/1bad"}, PlainLiteral("x")))
	if _, err := SerializeString(g, FormatRDFXML); err == nil {
		t.Fatal("expected error for predicate without a valid local name")
	}
}

func TestRDFXMLIndentOption(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, NewTriple(exA, RDFType, exType))
	out, err := SerializeString(g, FormatRDFXML, OptIndent("\t"))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(out, "\t\t<rdf:type rdf:resource=\"http://example.org/Person\"/>\n") {
		t.Fatalf("unexpected indentation:\n%s", out)
	}
}

func TestRDFXMLPredicateWithNumericPrefix(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, NewTriple(exA, IRI{Value: "http://example.org/v/2nd"}, PlainLiteral("x")))
	out, err := SerializeString(g, FormatRDFXML)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(out, `<ns0:nd xmlns:ns0="http://example.org/v/2">x</ns0:nd>`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRDFXMLUnabbreviablePredicate(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, NewTriple(exA, IRI{Value: "http://example.org/v/1"}, PlainLiteral("x")))
	var buf strings.Builder
	if err := Serialize(&buf, g, FormatRDFXML); err == nil {
		t.Fatal("expected an error")
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %q", buf.String())
	}
}

func TestSplitIRIForQName(t *testing.T) {
	cases := []struct {
		iri, ns, local string
		ok             bool
	}{
		{"http://example.org/name", "http://example.org/", "name", true},
		{"http://example.org/v#x-1.2", "http://example.org/v#", "x-1.2", true},
		{"http://example.org/", "", "", false},
		{"http://example.org/9lives", "http://example.org/9", "lives", true},
		{"http://example.org/v/1", "", "", false},
		{"urn:isbn:123", "", "", false},
	}
	for _, tc := range cases {
		ns, local, ok := splitIRIForQName(tc.iri)
		if ok != tc.ok || ns != tc.ns || local != tc.local {
			t.Fatalf("%s: got (%q,%q,%v)", tc.iri, ns, local, ok)
		}
	}
}
