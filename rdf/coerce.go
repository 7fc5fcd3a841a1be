package rdf

import (
	"strconv"
	"strings"
	"time"
)

var integerDatatypes = map[IRI]struct{}{
	XSDInteger:            {},
	XSDInt:                {},
	XSDLong:               {},
	XSDShort:              {},
	XSDByte:               {},
	XSDNonNegativeInteger: {},
	XSDPositiveInteger:    {},
	XSDNegativeInteger:    {},
	XSDUnsignedInt:        {},
	XSDUnsignedLong:       {},
}

var (
	dateTimeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	}
	dateLayouts = []string{
		"2006-01-02",
		"2006-01-02Z07:00",
	}
	timeLayouts = []string{
		"15:04:05.999999999",
		"15:04:05.999999999Z07:00",
		"15:04",
	}
)

// Native converts the literal to a Go value according to its datatype:
//
//	xsd:boolean             bool ("true" or "1", case-insensitive)
//	xsd:integer and kin     int64
//	xsd:float/double/decimal float64
//	xsd:dateTime/date/time  time.Time
//
// Any other literal, and any literal whose lexical form does not parse for its
// datatype, yields the lexical string. Native never fails.
func (l Literal) Native() any {
	dt := l.Datatype
	switch {
	case dt == XSDBoolean:
		return ParseBoolean(l.Lexical)
	case isIntegerDatatype(dt):
		if n, err := strconv.ParseInt(strings.TrimSpace(l.Lexical), 10, 64); err == nil {
			return n
		}
	case dt == XSDFloat || dt == XSDDouble || dt == XSDDecimal:
		if f, err := strconv.ParseFloat(strings.TrimSpace(l.Lexical), 64); err == nil {
			return f
		}
	case dt == XSDDateTime:
		if t, ok := ParseDateTime(l.Lexical); ok {
			return t
		}
	case dt == XSDDate:
		if t, ok := ParseDate(l.Lexical); ok {
			return t
		}
	case dt == XSDTime:
		if t, ok := ParseTime(l.Lexical); ok {
			return t
		}
	}
	return l.Lexical
}

func isIntegerDatatype(dt IRI) bool {
	_, ok := integerDatatypes[dt]
	return ok
}

// ParseBoolean reports whether value is "true" or "1" (case-insensitive).
func ParseBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// ParseDateTime parses an ISO-8601 date-time with or without a zone offset.
func ParseDateTime(value string) (time.Time, bool) {
	return parseLayouts(value, dateTimeLayouts)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(value string) (time.Time, bool) {
	return parseLayouts(value, dateLayouts)
}

// ParseTime parses an ISO-8601 time of day.
func ParseTime(value string) (time.Time, bool) {
	return parseLayouts(value, timeLayouts)
}

func parseLayouts(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTemporal renders t as the lexical form for datatype: a date for
// xsd:date, a time of day for xsd:time, and RFC 3339 otherwise.
func FormatTemporal(t time.Time, datatype IRI) string {
	switch datatype {
	case XSDDate:
		return t.Format("2006-01-02")
	case XSDTime:
		return t.Format("15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
