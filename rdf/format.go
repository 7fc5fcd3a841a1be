package rdf

import "strings"

// Format identifies RDF serialization formats.
type Format string

const (
	// FormatTurtle is the line notation: prefix declarations followed by one
	// "subject predicate object ." statement per line. It is the only format
	// that can be parsed.
	FormatTurtle Format = "turtle"
	// FormatRDFXML is the tag notation, written only.
	FormatRDFXML Format = "rdfxml"
	// FormatJSONLD is JSON-LD, written only.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl", "":
		return FormatTurtle, true
	case "rdfxml", "rdf", "xml", "rdf/xml":
		return FormatRDFXML, true
	case "jsonld", "json-ld":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// CanParse reports whether Parse accepts the format.
func (f Format) CanParse() bool {
	return f == FormatTurtle
}

// CanSerialize reports whether Serialize accepts the format.
func (f Format) CanSerialize() bool {
	switch f {
	case FormatTurtle, FormatRDFXML, FormatJSONLD:
		return true
	default:
		return false
	}
}
