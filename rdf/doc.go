// Package rdf provides a small in-memory RDF graph with prefix-aware codecs.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// A Graph is a set of triples plus a namespace prefix table:
//   - Mutate: Add, AddAll, Merge, Bind.
//   - Look up: Contains, Objects, Subjects, Value, HasSubject.
//   - Aggregate: Query understands three fixed COUNT queries.
//   - Identify: Fingerprint hashes the canonical line notation.
//
// Codecs:
//   - FormatTurtle is a line notation (one statement per line) that can be
//     both parsed and serialized. It is a subset of Turtle without ";", ","
//     or multi-line statements.
//   - FormatRDFXML and FormatJSONLD are written only.
//
// Serialization is deterministic: prefixes and triples are emitted in sorted
// order, so equal graphs produce byte-identical output.
//
// Example (parsing and writing):
//
//	g, err := rdf.ParseString(input, rdf.FormatTurtle)
//	if err != nil {
//	    // rdf.Code(err) is MALFORMED_TEXT or UNKNOWN_PREFIX
//	}
//	out, err := rdf.SerializeString(g, rdf.FormatRDFXML)
//
// Literal.Native converts typed literals to Go values (bool, int64, float64,
// time.Time) and falls back to the lexical form when a value does not parse.
package rdf
