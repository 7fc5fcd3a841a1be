package rdf

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

//go:generate stringer -type=TermKind -trimprefix=Term

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term (a named node).
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term (an anonymous node).
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
//
// All implementations are comparable values, so terms (and triples built from
// them) can be compared with == and used as map keys.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// IsZero reports whether the IRI is empty.
func (i IRI) IsZero() bool { return i.Value == "" }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// NewBlankNode returns a blank node with a freshly generated identifier.
func NewBlankNode() BlankNode {
	id := uuid.New()
	return BlankNode{ID: "b" + hex.EncodeToString(id[:])}
}

// Literal represents an RDF literal.
//
// Datatype and Lang are mutually exclusive. Literals built with NewLiteral are
// validated; literals built as struct values are validated when added to a Graph.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// NewLiteral creates a literal, rejecting a language tag combined with a datatype.
func NewLiteral(lexical string, datatype IRI, lang string) (Literal, error) {
	lit := Literal{Lexical: lexical, Datatype: datatype, Lang: lang}
	if err := lit.Validate(); err != nil {
		return Literal{}, err
	}
	return lit, nil
}

// TypedLiteral creates a literal with a datatype.
func TypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// LangLiteral creates a language-tagged literal.
func LangLiteral(lexical string, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// PlainLiteral creates a literal with neither datatype nor language.
func PlainLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// Validate reports ErrInvalidLiteral when both a language and a datatype are set.
func (l Literal) Validate() error {
	if l.Lang != "" && l.Datatype.Value != "" {
		return fmt.Errorf("%w: %q has both language %q and datatype <%s>", ErrInvalidLiteral, l.Lexical, l.Lang, l.Datatype.Value)
	}
	return nil
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// MarshalYAML renders the literal in line notation.
func (l Literal) MarshalYAML() (any, error) {
	return l.String(), nil
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject: an IRI or a BlankNode.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// NewTriple builds a triple.
func NewTriple(s Term, p IRI, o Term) Triple {
	return Triple{S: s, P: p, O: o}
}

// Validate checks the structural constraints of a triple.
func (t Triple) Validate() error {
	switch t.S.(type) {
	case IRI, BlankNode:
	case nil:
		return fmt.Errorf("%w: missing subject", ErrInvalidTriple)
	default:
		return fmt.Errorf("%w: subject %s must be an IRI or blank node", ErrInvalidTriple, t.S)
	}
	if t.P.Value == "" {
		return fmt.Errorf("%w: missing predicate for subject %s", ErrInvalidTriple, t.S)
	}
	if t.O == nil {
		return fmt.Errorf("%w: missing object for %s %s", ErrInvalidTriple, t.S, t.P)
	}
	if lit, ok := t.O.(Literal); ok {
		return lit.Validate()
	}
	return nil
}

// String renders the triple in line notation without prefixes.
func (t Triple) String() string {
	return renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " ."
}

// IsResource reports whether term can be the subject of a triple.
func IsResource(term Term) bool {
	switch term.(type) {
	case IRI, BlankNode:
		return true
	default:
		return false
	}
}
