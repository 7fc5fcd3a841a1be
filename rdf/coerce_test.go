package rdf

import (
	"testing"
	"time"
)

func TestLiteralNative(t *testing.T) {
	cases := []struct {
		lit  Literal
		want any
	}{
		{TypedLiteral("42", XSDInteger), int64(42)},
		{TypedLiteral("-7", XSDInt), int64(-7)},
		{TypedLiteral("forty", XSDInteger), "forty"},
		{TypedLiteral("true", XSDBoolean), true},
		{TypedLiteral("1", XSDBoolean), true},
		{TypedLiteral("no", XSDBoolean), false},
		{TypedLiteral("2.5", XSDDouble), 2.5},
		{TypedLiteral("10.25", XSDDecimal), 10.25},
		{TypedLiteral("not-a-date", XSDDateTime), "not-a-date"},
		{PlainLiteral("plain"), "plain"},
		{LangLiteral("hallo", "de"), "hallo"},
		{TypedLiteral("x", IRI{Value: "http://example.org/custom"}), "x"},
	}
	for _, tc := range cases {
		if got := tc.lit.Native(); got != tc.want {
			t.Fatalf("%s: got %#v want %#v", tc.lit, got, tc.want)
		}
	}
}

func TestLiteralNativeTemporal(t *testing.T) {
	dt, ok := TypedLiteral("2024-03-01T10:30:00Z", XSDDateTime).Native().(time.Time)
	if !ok || !dt.Equal(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected dateTime: %v", dt)
	}
	local, ok := TypedLiteral("2024-03-01T10:30:00", XSDDateTime).Native().(time.Time)
	if !ok || local.Hour() != 10 {
		t.Fatalf("unexpected zoneless dateTime: %v", local)
	}
	d, ok := TypedLiteral("2024-03-01", XSDDate).Native().(time.Time)
	if !ok || d.Year() != 2024 || d.Month() != time.March || d.Day() != 1 {
		t.Fatalf("unexpected date: %v", d)
	}
	tm, ok := TypedLiteral("08:15:00", XSDTime).Native().(time.Time)
	if !ok || tm.Hour() != 8 || tm.Minute() != 15 {
		t.Fatalf("unexpected time: %v", tm)
	}
}

func TestFormatTemporal(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 5, 0, time.UTC)
	cases := map[IRI]string{
		XSDDateTime: "2024-03-01T10:30:05Z",
		XSDDate:     "2024-03-01",
		XSDTime:     "10:30:05",
	}
	for dt, want := range cases {
		if got := FormatTemporal(ts, dt); got != want {
			t.Fatalf("%s: got %q want %q", dt, got, want)
		}
	}
	for dt := range cases {
		lexical := FormatTemporal(ts, dt)
		if _, ok := TypedLiteral(lexical, dt).Native().(time.Time); !ok {
			t.Fatalf("%s: %q does not parse back", dt, lexical)
		}
	}
}
