package mapping

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// kindOf classifies T from its zero value. Record and Ref kinds also return
// the nested type definition. Named types without their own text encoding are
// classified by their underlying kind.
func kindOf[T any]() (Kind, *TypeDef) {
	var zero T
	switch v := any(zero).(type) {
	case string:
		return KindString, nil
	case URI:
		return KindURI, nil
	case int, int32, int64:
		return KindInt, nil
	case float32, float64:
		return KindFloat, nil
	case bool:
		return KindBool, nil
	case time.Time:
		return KindTime, nil
	case []byte:
		return KindBytes, nil
	case uuid.UUID:
		return KindUUID, nil
	case rdf.IRI, rdf.BlankNode, rdf.Literal:
		return KindTerm, nil
	case Record:
		return KindRecord, v.GraphType()
	}
	switch p := any(&zero).(type) {
	case *rdf.Term:
		return KindTerm, nil
	case *any:
		return KindAny, nil
	case refSetter:
		return KindRef, p.refType()
	case lexicalSetter:
		return KindLexical, nil
	case encoding.TextUnmarshaler:
		return KindText, nil
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		return KindString, nil
	case reflect.Bool:
		return KindBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil
	}
	return KindUnsupported, nil
}

// assign converts a decoded value into T. src is a nested record, a value
// returned by a custom parser, or nil, in which case the value comes from the
// term itself.
func assign[T any](src any, term rdf.Term) (T, error) {
	var out T
	if src != nil {
		if v, ok := src.(T); ok {
			return v, nil
		}
	}
	native := src
	if native == nil {
		native = nativeOf(term)
	}

	var err error
	switch p := any(&out).(type) {
	case *rdf.Term:
		if term == nil {
			return out, fmt.Errorf("no term for %T", native)
		}
		*p = term
	case *rdf.IRI:
		*p = rdf.IRI{Value: lexicalForm(native, term)}
	case *rdf.Literal:
		lit, ok := term.(rdf.Literal)
		if !ok {
			return out, fmt.Errorf("%s is not a literal", term)
		}
		*p = lit
	case *any:
		*p = native
	case *string:
		*p = lexicalForm(native, term)
	case *URI:
		*p = URI(lexicalForm(native, term))
	case *int64:
		*p, err = toInt(native)
	case *int:
		var n int64
		n, err = toInt(native)
		*p = int(n)
	case *int32:
		var n int64
		n, err = toInt(native)
		if err == nil && (n < math.MinInt32 || n > math.MaxInt32) {
			err = fmt.Errorf("%d overflows int32", n)
		}
		*p = int32(n)
	case *float64:
		*p, err = toFloat(native)
	case *float32:
		var f float64
		f, err = toFloat(native)
		*p = float32(f)
	case *bool:
		*p, err = toBool(native)
	case *time.Time:
		*p, err = toTime(native)
	case *[]byte:
		*p, err = base64.StdEncoding.DecodeString(strings.TrimSpace(lexicalForm(native, term)))
	case *uuid.UUID:
		*p, err = uuid.Parse(lexicalForm(native, term))
	case refSetter:
		if term == nil {
			return out, fmt.Errorf("no term for reference")
		}
		err = p.setRef(term, src)
	case lexicalSetter:
		p.setLexical(src, term)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(lexicalForm(native, term)))
	default:
		var ok bool
		if ok, err = setBasic(reflect.ValueOf(&out).Elem(), native, term); !ok {
			return out, fmt.Errorf("cannot convert %T to %T", native, out)
		}
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// setBasic stores native into dst when dst's type is based on a string, bool,
// integer or float kind. It reports false for any other type.
func setBasic(dst reflect.Value, native any, term rdf.Term) (bool, error) {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(lexicalForm(native, term))
	case reflect.Bool:
		b, err := toBool(native)
		if err != nil {
			return true, err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt(native)
		if err != nil {
			return true, err
		}
		if dst.OverflowInt(n) {
			return true, fmt.Errorf("%d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toUint(native)
		if err != nil {
			return true, err
		}
		if dst.OverflowUint(n) {
			return true, fmt.Errorf("%d overflows %s", n, dst.Type())
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := toFloat(native)
		if err != nil {
			return true, err
		}
		if dst.OverflowFloat(f) {
			return true, fmt.Errorf("%v overflows %s", f, dst.Type())
		}
		dst.SetFloat(f)
	default:
		return false, nil
	}
	return true, nil
}

// basicValue unwraps a value whose type is based on a string, bool, integer
// or float kind to string, bool, int64, uint64, float32 or float64. Values
// with their own text encoding and all other values are returned unchanged.
func basicValue(v any) any {
	if _, ok := v.(encoding.TextMarshaler); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32:
		return float32(rv.Float())
	case reflect.Float64:
		return rv.Float()
	}
	return v
}

// nativeOf is the datatype-directed value of a term: Literal.Native for
// literals, the identifier string for nodes.
func nativeOf(term rdf.Term) any {
	switch t := term.(type) {
	case rdf.Literal:
		return t.Native()
	case rdf.IRI:
		return t.Value
	case rdf.BlankNode:
		return t.String()
	default:
		return nil
	}
}

// lexicalForm prefers the term's own text so that string fields receive the
// lexical form rather than a reformatted native value.
func lexicalForm(native any, term rdf.Term) string {
	switch t := term.(type) {
	case rdf.Literal:
		return t.Lexical
	case rdf.IRI:
		return t.Value
	case rdf.BlankNode:
		return t.String()
	}
	switch v := native.(type) {
	case nil:
		return ""
	case string:
		return v
	case rdf.Term:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to an integer", v)
	}
}

func toUint(v any) (uint64, error) {
	if s, ok := v.(string); ok {
		return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return uint64(n), nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to a float", v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		return b != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return false, fmt.Errorf("%q is not a boolean", b)
	default:
		return false, fmt.Errorf("cannot convert %T to a boolean", v)
	}
}

func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		if parsed, ok := rdf.ParseDateTime(t); ok {
			return parsed, nil
		}
		if parsed, ok := rdf.ParseDate(t); ok {
			return parsed, nil
		}
		if parsed, ok := rdf.ParseTime(t); ok {
			return parsed, nil
		}
		return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date or time", t)
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to a time", v)
	}
}

// isEmpty reports values that are skipped on encode: nil, empty strings (named
// string types included) and byte slices, nil records, zero times and UUIDs,
// and empty Ref/Lexical values.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case URI:
		return x == ""
	case []byte:
		return len(x) == 0
	case time.Time:
		return x.IsZero()
	case uuid.UUID:
		return x == uuid.Nil
	case rdf.IRI:
		return x.IsZero()
	case refValue:
		term, rec := x.refParts()
		return term == nil && rec == nil
	case lexicalValue:
		return x.lexicalEmpty()
	}
	if s, ok := basicValue(v).(string); ok {
		return s == ""
	}
	return false
}
