package mapping

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies the element type of a mapped field after optional and list
// wrapping has been removed.
type Kind uint8

const (
	// KindString is a Go string or a named string type.
	KindString Kind = iota
	// KindURI is an identifier-like string (URI): written as a named node when it
	// looks absolute.
	KindURI
	// KindInt is any signed or unsigned integer type, named or not.
	KindInt
	// KindFloat is float32, float64 or a type based on them.
	KindFloat
	// KindBool is bool or a type based on it.
	KindBool
	// KindTime is time.Time.
	KindTime
	// KindBytes is []byte, written as xsd:base64Binary.
	KindBytes
	// KindUUID is uuid.UUID.
	KindUUID
	// KindText is an enum-like type implementing encoding.TextUnmarshaler.
	KindText
	// KindTerm is an rdf term, passed through unchanged.
	KindTerm
	// KindAny holds whatever literal coercion produces.
	KindAny
	// KindRecord is a nested record.
	KindRecord
	// KindRef is a Ref: a named node, a literal, or a nested record.
	KindRef
	// KindLexical is a Lexical value that keeps malformed input as text.
	KindLexical
	// KindUnsupported is a type the engine cannot convert; schemas reject it.
	KindUnsupported
)
