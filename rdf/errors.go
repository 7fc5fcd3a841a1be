package rdf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeMalformedText indicates a line that cannot be split into a statement.
	ErrCodeMalformedText ErrorCode = "MALFORMED_TEXT"
	// ErrCodeUnknownPrefix indicates a prefixed name whose prefix was never declared.
	ErrCodeUnknownPrefix ErrorCode = "UNKNOWN_PREFIX"
	// ErrCodeUnsupportedQuery indicates a query outside the fixed aggregate set.
	ErrCodeUnsupportedQuery ErrorCode = "UNSUPPORTED_QUERY"
	// ErrCodeInvalidLiteral indicates a literal with both a language and a datatype.
	ErrCodeInvalidLiteral ErrorCode = "INVALID_LITERAL"
	// ErrCodeInvalidTriple indicates a structurally invalid triple.
	ErrCodeInvalidTriple ErrorCode = "INVALID_TRIPLE"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrMalformedText indicates a line that cannot be tokenized into subject, predicate and object.
	ErrMalformedText = errors.New("rdf: malformed statement")
	// ErrUnknownPrefix indicates a prefixed name whose prefix was never declared.
	ErrUnknownPrefix = errors.New("rdf: unknown prefix")
	// ErrUnsupportedQuery indicates a query outside the fixed aggregate set.
	ErrUnsupportedQuery = errors.New("rdf: unsupported query")
	// ErrInvalidLiteral indicates a literal with both a language and a datatype.
	ErrInvalidLiteral = errors.New("rdf: literal cannot have both language and datatype")
	// ErrInvalidTriple indicates a triple with a missing or misplaced term.
	ErrInvalidTriple = errors.New("rdf: invalid triple")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	// EOF is not an error condition
	if err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrMalformedText):
		return ErrCodeMalformedText
	case errors.Is(err, ErrUnknownPrefix):
		return ErrCodeUnknownPrefix
	case errors.Is(err, ErrUnsupportedQuery):
		return ErrCodeUnsupportedQuery
	case errors.Is(err, ErrInvalidLiteral):
		return ErrCodeInvalidLiteral
	case errors.Is(err, ErrInvalidTriple):
		return ErrCodeInvalidTriple
	}

	return ErrCodeParseError
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "turtle")
	Statement string // Offending line
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)

	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}

	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if e.Statement != "" {
		excerpt := e.formatExcerpt()
		if excerpt != "" {
			msg.WriteString("\n  ")
			msg.WriteString(excerpt)
		}
	}

	return msg.String()
}

// formatExcerpt formats a readable excerpt of the statement around the error position.
func (e *ParseError) formatExcerpt() string {
	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column > 0 {
		start := e.Column - 1
		if start > len(e.Statement) {
			start = len(e.Statement)
		}

		excerptStart := start - contextLen
		if excerptStart < 0 {
			excerptStart = 0
		}
		excerptEnd := start + contextLen
		if excerptEnd > len(e.Statement) {
			excerptEnd = len(e.Statement)
		}

		excerpt := e.Statement[excerptStart:excerptEnd]
		if excerptStart > 0 {
			excerpt = "..." + excerpt
		}
		if excerptEnd < len(e.Statement) {
			excerpt = excerpt + "..."
		}

		caretPos := start - excerptStart
		if excerptStart > 0 {
			caretPos += 3 // Account for "..."
		}
		if caretPos >= len(excerpt) {
			caretPos = len(excerpt) - 1
		}
		if caretPos < 0 {
			caretPos = 0
		}

		var result strings.Builder
		result.WriteString(excerpt)
		result.WriteString("\n  ")
		result.WriteString(strings.Repeat(" ", caretPos))
		result.WriteByte('^')
		return result.String()
	}

	if len(e.Statement) > maxExcerptLen {
		return e.Statement[:maxExcerptLen] + "..."
	}
	return e.Statement
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds format/statement/position context to a parse error.
func wrapParseError(format, statement string, line, column int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Column > 0 && column == 0 {
			column = parseErr.Column
		}
		err = parseErr.Err
	}
	return &ParseError{
		Format:    format,
		Statement: statement,
		Line:      line,
		Column:    column,
		Err:       err,
	}
}
