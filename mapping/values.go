package mapping

import (
	"fmt"
	"regexp"

	"github.com/geoknoesis/rdfmodel/rdf"
)

var uriPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// LooksLikeURI reports whether value starts with a scheme such as "http:" or "urn:".
func LooksLikeURI(value string) bool {
	return uriPattern.MatchString(value)
}

// URI is an identifier-like string. A URI that looks absolute is written as a
// named node; anything else is written as a literal.
type URI string

// Ref is a field value that is either a plain reference (a named node, an
// anonymous node or a literal) or a nested record.
//
// When Record is set it takes precedence and is encoded as a nested record.
// Decoding yields a nested record whenever the graph describes the referenced
// node, and a bare reference otherwise.
type Ref[R Record] struct {
	Term   rdf.Term
	Record R
}

// RefIRI references a named node.
func RefIRI[R Record](iri string) Ref[R] {
	return Ref[R]{Term: rdf.IRI{Value: iri}}
}

// RefText holds a plain literal in place of a reference.
func RefText[R Record](text string) Ref[R] {
	return Ref[R]{Term: rdf.PlainLiteral(text)}
}

// RefTo wraps a nested record.
func RefTo[R Record](rec R) Ref[R] {
	return Ref[R]{Record: rec}
}

// IsRecord reports whether the reference carries a nested record.
func (r Ref[R]) IsRecord() bool {
	var zero R
	return any(r.Record) != any(zero)
}

// IsZero reports whether the reference holds neither a term nor a record.
func (r Ref[R]) IsZero() bool {
	return r.Term == nil && !r.IsRecord()
}

// MarshalYAML renders the reference term when there is one and the nested
// record otherwise. Decoded references always carry their term, so cyclic
// record graphs render finitely.
func (r Ref[R]) MarshalYAML() (any, error) {
	if r.Term != nil {
		return r.Term.String(), nil
	}
	if r.IsRecord() {
		return r.Record, nil
	}
	return nil, nil
}

func (r Ref[R]) refParts() (rdf.Term, Record) {
	if r.IsRecord() {
		return r.Term, r.Record
	}
	return r.Term, nil
}

func (r *Ref[R]) setRef(term rdf.Term, src any) error {
	r.Term = term
	if src == nil {
		return nil
	}
	rec, ok := src.(R)
	if !ok {
		return fmt.Errorf("cannot use %T as %T", src, r.Record)
	}
	r.Record = rec
	return nil
}

func (r *Ref[R]) refType() *TypeDef {
	var zero R
	return zero.GraphType()
}

type refValue interface {
	refParts() (rdf.Term, Record)
}

type refSetter interface {
	setRef(term rdf.Term, src any) error
	refType() *TypeDef
}

// Lexical holds a typed value that may have failed to parse. A malformed
// literal (for example "not-a-date" typed as xsd:dateTime) decodes with Valid
// false and the lexical form in Raw, and is written back unchanged.
type Lexical[T any] struct {
	Value T
	Raw   string
	Valid bool
}

// LexicalOf wraps a well-formed value.
func LexicalOf[T any](v T) Lexical[T] {
	return Lexical[T]{Value: v, Valid: true}
}

func (l Lexical[T]) String() string {
	if l.Valid {
		return fmt.Sprint(l.Value)
	}
	return l.Raw
}

// MarshalYAML renders the value, or the raw text when it did not parse.
func (l Lexical[T]) MarshalYAML() (any, error) {
	if l.Valid {
		return l.Value, nil
	}
	return l.Raw, nil
}

func (l Lexical[T]) lexicalValue() (value any, raw string, valid bool) {
	return l.Value, l.Raw, l.Valid
}

func (l Lexical[T]) lexicalEmpty() bool {
	return !l.Valid && l.Raw == ""
}

func (l *Lexical[T]) setLexical(src any, term rdf.Term) {
	v, err := assign[T](src, term)
	if err == nil {
		*l = Lexical[T]{Value: v, Valid: true}
		return
	}
	*l = Lexical[T]{Raw: lexicalForm(src, term)}
}

func (l *Lexical[T]) lexicalKind() Kind {
	kind, _ := kindOf[T]()
	return kind
}

type lexicalValue interface {
	lexicalValue() (value any, raw string, valid bool)
	lexicalEmpty() bool
}

type lexicalSetter interface {
	setLexical(src any, term rdf.Term)
	lexicalKind() Kind
}
