package rdf

// Namespace bases bound into every graph produced by the mapping layer.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDFType is the rdf:type predicate, written "a" in line notation.
var RDFType = IRI{Value: RDFNamespace + "type"}

// XSD datatypes understood by literal coercion.
var (
	XSDString             = IRI{Value: XSDNamespace + "string"}
	XSDBoolean            = IRI{Value: XSDNamespace + "boolean"}
	XSDInteger            = IRI{Value: XSDNamespace + "integer"}
	XSDInt                = IRI{Value: XSDNamespace + "int"}
	XSDLong               = IRI{Value: XSDNamespace + "long"}
	XSDShort              = IRI{Value: XSDNamespace + "short"}
	XSDByte               = IRI{Value: XSDNamespace + "byte"}
	XSDNonNegativeInteger = IRI{Value: XSDNamespace + "nonNegativeInteger"}
	XSDPositiveInteger    = IRI{Value: XSDNamespace + "positiveInteger"}
	XSDNegativeInteger    = IRI{Value: XSDNamespace + "negativeInteger"}
	XSDUnsignedInt        = IRI{Value: XSDNamespace + "unsignedInt"}
	XSDUnsignedLong       = IRI{Value: XSDNamespace + "unsignedLong"}
	XSDFloat              = IRI{Value: XSDNamespace + "float"}
	XSDDouble             = IRI{Value: XSDNamespace + "double"}
	XSDDecimal            = IRI{Value: XSDNamespace + "decimal"}
	XSDDate               = IRI{Value: XSDNamespace + "date"}
	XSDDateTime           = IRI{Value: XSDNamespace + "dateTime"}
	XSDTime               = IRI{Value: XSDNamespace + "time"}
	XSDBase64Binary       = IRI{Value: XSDNamespace + "base64Binary"}
	XSDAnyURI             = IRI{Value: XSDNamespace + "anyURI"}
)

// DefaultPrefixes returns the prefixes every mapped graph starts with.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf": RDFNamespace,
		"xsd": XSDNamespace,
	}
}
