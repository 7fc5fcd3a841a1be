package mapping

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfmodel/rdf"
)

var (
	foafName   = rdf.IRI{Value: foafNS + "name"}
	foafKnows  = rdf.IRI{Value: foafNS + "knows"}
	foafPerson = rdf.IRI{Value: foafNS + "Person"}
	foafOrg    = rdf.IRI{Value: foafNS + "Organization"}
	worksAt    = rdf.IRI{Value: foafNS + "workplaceHomepage"}
)

func person(id string) rdf.IRI { return rdf.IRI{Value: peopleNS + id} }

func TestEncodeNestedRecord(t *testing.T) {
	alice := &testPerson{
		ID:       "alice",
		Name:     "Alice",
		Employer: &testOrg{ID: "acme", Name: "ACME"},
	}
	g := rdf.NewGraph()
	subject, err := Encode(g, alice)
	require.NoError(t, err)
	assert.Equal(t, person("alice"), subject)

	acme := rdf.IRI{Value: orgsNS + "acme"}
	assert.True(t, g.Contains(rdf.NewTriple(subject, rdf.RDFType, foafPerson)))
	assert.True(t, g.Contains(rdf.NewTriple(acme, rdf.RDFType, foafOrg)))
	assert.True(t, g.Contains(rdf.NewTriple(subject, worksAt, acme)))
	assert.True(t, g.Contains(rdf.NewTriple(acme, foafName, rdf.PlainLiteral("ACME"))))
	assert.Equal(t, 5, g.Len())

	got, err := Decode[*testPerson](g, subject)
	require.NoError(t, err)
	require.NotNil(t, got.Employer)
	assert.Equal(t, "alice", got.ID)
	assert.Equal(t, &testOrg{ID: "acme", Name: "ACME"}, got.Employer)
}

func TestEncodeIntegerLiteral(t *testing.T) {
	g := rdf.NewGraph()
	subject, err := Encode(g, &testPerson{ID: "bob", Age: intPtr(42)})
	require.NoError(t, err)

	age := rdf.IRI{Value: foafNS + "age"}
	assert.Equal(t, rdf.TypedLiteral("42", rdf.XSDInteger), g.Value(subject, age, nil))

	got, err := Decode[*testPerson](g, subject)
	require.NoError(t, err)
	require.NotNil(t, got.Age)
	assert.Equal(t, 42, *got.Age)
}

func TestEncodeSkipsEmptyAndUnmappedFields(t *testing.T) {
	g := rdf.NewGraph()
	_, err := Encode(g, &testPerson{ID: "carol", Note: "not mapped"})
	require.NoError(t, err)

	// Only the type triple: empty strings, nil pointers and empty lists are
	// skipped and Note has no property.
	assert.Equal(t, 1, g.Len())
}

func TestEncodeValueKinds(t *testing.T) {
	token := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	sample := &testSample{
		ID:    "s1",
		Count: 3,
		Flag:  true,
		Ratio: 0.25,
		Price: 19.5,
		When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Day:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Blob:  []byte("hi"),
		Token: token,
		Link:  "https://example.com/x",
		Title: "Hello",
		Level: levelHigh,
		Extra: int64(7),
		Nick:  strPtr("sam"),
	}
	g := rdf.NewGraph()
	subject, err := Encode(g, sample)
	require.NoError(t, err)
	assert.Equal(t, rdf.IRI{Value: sampleNS + "s1"}, subject)

	tests := []struct {
		field string
		want  rdf.Term
	}{
		{"count", rdf.TypedLiteral("3", rdf.XSDInteger)},
		{"flag", rdf.TypedLiteral("true", rdf.XSDBoolean)},
		{"ratio", rdf.TypedLiteral("0.25", rdf.XSDDouble)},
		{"price", rdf.TypedLiteral("19.5", rdf.XSDDecimal)},
		{"when", rdf.TypedLiteral("2024-01-02T03:04:05Z", rdf.XSDDateTime)},
		{"day", rdf.TypedLiteral("2024-01-02", rdf.XSDDate)},
		{"blob", rdf.TypedLiteral("aGk=", rdf.XSDBase64Binary)},
		{"token", rdf.TypedLiteral(token.String(), rdf.XSDString)},
		{"link", rdf.IRI{Value: "https://example.com/x"}},
		{"title", rdf.LangLiteral("Hello", "en")},
		{"level", rdf.PlainLiteral("high")},
		{"extra", rdf.TypedLiteral("7", rdf.XSDInteger)},
		{"nick", rdf.PlainLiteral("sam")},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := g.Value(subject, rdf.IRI{Value: sampleNS + tt.field}, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeURIFieldThatIsNotAbsolute(t *testing.T) {
	g := rdf.NewGraph()
	subject, err := Encode(g, &testSample{ID: "s2", Link: "see elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, rdf.PlainLiteral("see elsewhere"), g.Value(subject, rdf.IRI{Value: sampleNS + "link"}, nil))
}

func TestEncodeBindsPrefixes(t *testing.T) {
	def := &TypeDef{
		Name:     "Prefixed",
		IDField:  "ID",
		Prefixes: map[string]string{"rdf": "http://example.org/not-rdf#", "ex": "http://example.org/"},
		New:      func() Record { return new(labelled) },
		Fields:   labelledFields(),
	}
	g := rdf.NewGraph()
	_, err := Encode(g, &labelled{ID: "http://example.org/t", def: def}, WithRegistry(NewRegistry()))
	require.NoError(t, err)

	ns, ok := g.Namespace("rdf")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/not-rdf#", ns)
	ns, ok = g.Namespace("xsd")
	require.True(t, ok)
	assert.Equal(t, rdf.XSDNamespace, ns)
	_, ok = g.Namespace("ex")
	assert.True(t, ok)
}

// labelled is a record whose type definition is chosen per instance.
type labelled struct {
	ID    string
	Label string
	Tags  []string
	def   *TypeDef
}

func (l *labelled) GraphType() *TypeDef {
	if l == nil {
		return nil
	}
	return l.def
}

func labelledFields(opts ...PropertyOption) func() []FieldDecl {
	return func() []FieldDecl {
		return []FieldDecl{
			Field("ID", One(func(l *labelled) *string { return &l.ID })),
			Field("Label", One(func(l *labelled) *string { return &l.Label }),
				Property("http://example.org/label", opts...)),
		}
	}
}

func TestEncodeCycleTerminates(t *testing.T) {
	a := &testPerson{ID: "a"}
	b := &testPerson{ID: "b", Knows: []Ref[*testPerson]{RefTo(a)}}
	a.Knows = []Ref[*testPerson]{RefTo(b)}

	g := rdf.NewGraph()
	subject, err := Encode(g, a)
	require.NoError(t, err)
	assert.Equal(t, person("a"), subject)
	assert.True(t, g.Contains(rdf.NewTriple(person("a"), foafKnows, person("b"))))
	assert.True(t, g.Contains(rdf.NewTriple(person("b"), foafKnows, person("a"))))
	assert.Equal(t, 4, g.Len())
}

func TestEncodeFieldErrorAddsNothing(t *testing.T) {
	boom := errors.New("boom")
	def := &TypeDef{
		Name:    "Failing",
		Type:    "http://example.org/Failing",
		IDField: "ID",
		New:     func() Record { return new(labelled) },
		Fields:  labelledFields(WithSerializer(func(any) (any, error) { return nil, boom })),
	}
	reg := NewRegistry()
	g := rdf.NewGraph()
	_, err := Encode(g, &labelled{ID: "x", Label: "y", def: def}, WithRegistry(reg), WithBase("http://example.org"))
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Label", fieldErr.Field)
	assert.Equal(t, rdf.IRI{Value: "http://example.org/x"}, fieldErr.Subject)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, g.Len())
}

func TestEncodeSerializerCanDropItems(t *testing.T) {
	def := &TypeDef{
		Name:    "Dropping",
		IDField: "ID",
		New:     func() Record { return new(labelled) },
		Fields:  labelledFields(WithSerializer(func(any) (any, error) { return nil, nil })),
	}
	g := rdf.NewGraph()
	_, err := Encode(g, &labelled{ID: "urn:x:1", Label: "y", def: def}, WithRegistry(NewRegistry()))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestEncodeRejectsNilRecords(t *testing.T) {
	g := rdf.NewGraph()

	_, err := Encode(g, nil)
	assert.ErrorIs(t, err, ErrNotRecord)

	_, err = Encode(g, (*testPerson)(nil))
	assert.ErrorIs(t, err, ErrNotRecord)
	assert.Equal(t, ErrCodeNotRecord, Code(err))

	_, err = Encode(g, (*labelled)(nil))
	assert.ErrorIs(t, err, ErrNotRecord)
}

func TestEncodeInvalidLexicalKeepsRawText(t *testing.T) {
	g := rdf.NewGraph()
	subject, err := Encode(g, &testPerson{ID: "dan", Born: Lexical[time.Time]{Raw: "not-a-date"}})
	require.NoError(t, err)

	birthday := rdf.IRI{Value: foafNS + "birthday"}
	assert.Equal(t, rdf.TypedLiteral("not-a-date", rdf.XSDDateTime), g.Value(subject, birthday, nil))
}

func TestEncodeNamedScalars(t *testing.T) {
	spare := testRank(1)
	g := rdf.NewGraph()
	subject, err := Encode(g, &testPalette{ID: "p1", Color: colorRed, Rank: rankThird, Weight: 200, Spare: &spare})
	require.NoError(t, err)

	tests := []struct {
		field string
		want  rdf.Term
	}{
		{"color", rdf.PlainLiteral("red")},
		{"rank", rdf.TypedLiteral("3", rdf.XSDInteger)},
		{"weight", rdf.TypedLiteral("200", rdf.XSDInteger)},
		{"spare", rdf.TypedLiteral("1", rdf.XSDInteger)},
		{"shade", nil},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Value(subject, rdf.IRI{Value: sampleNS + tt.field}, nil))
		})
	}

	empty, err := Encode(g, &testPalette{ID: "p2"})
	require.NoError(t, err)
	assert.Nil(t, g.Value(empty, rdf.IRI{Value: sampleNS + "color"}, nil))
	assert.Equal(t, rdf.TypedLiteral("0", rdf.XSDInteger), g.Value(empty, rdf.IRI{Value: sampleNS + "rank"}, nil))
}
