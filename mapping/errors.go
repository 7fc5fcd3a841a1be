package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geoknoesis/rdfmodel/rdf"
)

const (
	// ErrCodeAmbiguousSubject indicates more than one candidate subject during inference.
	ErrCodeAmbiguousSubject rdf.ErrorCode = "AMBIGUOUS_SUBJECT"
	// ErrCodeNoSubject indicates that inference found no candidate subject.
	ErrCodeNoSubject rdf.ErrorCode = "NO_SUBJECT"
	// ErrCodeSchemaConfiguration indicates a record type whose field declarations are unusable.
	ErrCodeSchemaConfiguration rdf.ErrorCode = "SCHEMA_CONFIGURATION"
	// ErrCodeTypeMismatch indicates a literal where a nested record was expected.
	ErrCodeTypeMismatch rdf.ErrorCode = "TYPE_MISMATCH"
	// ErrCodeNotRecord indicates a value that cannot act as a mapped record.
	ErrCodeNotRecord rdf.ErrorCode = "NOT_RECORD"
)

var (
	// ErrAmbiguousSubject indicates more than one candidate subject during inference.
	ErrAmbiguousSubject = errors.New("mapping: ambiguous subject")
	// ErrNoSubject indicates that inference found no candidate subject.
	ErrNoSubject = errors.New("mapping: no subject found")
	// ErrSchemaConfiguration indicates a record type whose field declarations are unusable.
	ErrSchemaConfiguration = errors.New("mapping: invalid schema configuration")
	// ErrTypeMismatch indicates a literal where a nested record was expected.
	ErrTypeMismatch = errors.New("mapping: type mismatch")
	// ErrNotRecord indicates a nil record or a record without a type definition.
	ErrNotRecord = errors.New("mapping: not a mapped record")
)

// Code returns the error code for err, covering both mapping and rdf errors.
func Code(err error) rdf.ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAmbiguousSubject):
		return ErrCodeAmbiguousSubject
	case errors.Is(err, ErrNoSubject):
		return ErrCodeNoSubject
	case errors.Is(err, ErrSchemaConfiguration):
		return ErrCodeSchemaConfiguration
	case errors.Is(err, ErrTypeMismatch):
		return ErrCodeTypeMismatch
	case errors.Is(err, ErrNotRecord):
		return ErrCodeNotRecord
	}
	return rdf.Code(err)
}

// AmbiguousSubjectError lists the candidates found when inference could not
// choose a single subject.
type AmbiguousSubjectError struct {
	Type       string
	Candidates []rdf.Term
}

func (e *AmbiguousSubjectError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.String()
	}
	return fmt.Sprintf("%s: %d resources of type %s (%s); provide the subject explicitly",
		ErrAmbiguousSubject, len(e.Candidates), e.Type, strings.Join(names, ", "))
}

func (e *AmbiguousSubjectError) Unwrap() error { return ErrAmbiguousSubject }

// SchemaError reports a field declaration rejected while building a schema.
type SchemaError struct {
	Type  string
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: type %s: %v", ErrSchemaConfiguration, e.Type, e.Err)
	}
	return fmt.Sprintf("%s: type %s field %s: %v", ErrSchemaConfiguration, e.Type, e.Field, e.Err)
}

// Unwrap matches both ErrSchemaConfiguration and the underlying cause.
func (e *SchemaError) Unwrap() []error { return []error{ErrSchemaConfiguration, e.Err} }

// FieldError locates a failure on one field of one subject.
type FieldError struct {
	Type      string
	Field     string
	Subject   rdf.Term
	Predicate rdf.IRI
	Err       error
}

func (e *FieldError) Error() string {
	subject := "<nil>"
	if e.Subject != nil {
		subject = e.Subject.String()
	}
	return fmt.Sprintf("%s.%s (subject %s, predicate %s): %v", e.Type, e.Field, subject, e.Predicate.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
