package mapping

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfmodel/rdf"
)

const (
	foafNS   = "http://xmlns.com/foaf/0.1/"
	peopleNS = "http://example.org/people/"
	orgsNS   = "http://example.org/orgs/"
	sampleNS = "http://example.org/samples/"
)

type testPerson struct {
	ID       string
	Name     string
	Age      *int
	Emails   []string
	Homepage URI
	Born     Lexical[time.Time]
	Employer *testOrg
	Knows    []Ref[*testPerson]
	Note     string
}

func (*testPerson) GraphType() *TypeDef { return personDef }

var personDef = &TypeDef{
	Name:      "Person",
	Type:      foafNS + "Person",
	Namespace: peopleNS,
	Prefixes:  map[string]string{"foaf": foafNS},
	IDField:   "ID",
	New:       func() Record { return new(testPerson) },
	Fields: func() []FieldDecl {
		return []FieldDecl{
			Field("ID", One(func(p *testPerson) *string { return &p.ID })),
			Field("Name", One(func(p *testPerson) *string { return &p.Name }), Property(foafNS+"name")),
			Field("Age", Opt(func(p *testPerson) **int { return &p.Age }), Property(foafNS+"age")),
			Field("Emails", Many(func(p *testPerson) *[]string { return &p.Emails }), Property(foafNS+"mbox")),
			Field("Homepage", One(func(p *testPerson) *URI { return &p.Homepage }), Property(foafNS+"homepage")),
			Field("Born", One(func(p *testPerson) *Lexical[time.Time] { return &p.Born }), Property(foafNS+"birthday")),
			Field("Employer", One(func(p *testPerson) **testOrg { return &p.Employer }), Property(foafNS+"workplaceHomepage")),
			Field("Knows", Many(func(p *testPerson) *[]Ref[*testPerson] { return &p.Knows }), Property(foafNS+"knows")),
			Field("Note", One(func(p *testPerson) *string { return &p.Note })),
		}
	},
}

type testOrg struct {
	ID   string
	Name string
}

func (*testOrg) GraphType() *TypeDef { return orgDef }

var orgDef = &TypeDef{
	Name:      "Organization",
	Type:      foafNS + "Organization",
	Namespace: orgsNS,
	Prefixes:  map[string]string{"foaf": foafNS},
	IDField:   "ID",
	New:       func() Record { return new(testOrg) },
	Fields: func() []FieldDecl {
		return []FieldDecl{
			Field("ID", One(func(o *testOrg) *string { return &o.ID })),
			Field("Name", One(func(o *testOrg) *string { return &o.Name }), Property(foafNS+"name")),
		}
	},
}

type testLevel int

const (
	levelLow testLevel = iota
	levelHigh
)

func (l testLevel) MarshalText() ([]byte, error) {
	if l == levelHigh {
		return []byte("high"), nil
	}
	return []byte("low"), nil
}

func (l *testLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "high":
		*l = levelHigh
	case "low":
		*l = levelLow
	default:
		return errUnknownLevel
	}
	return nil
}

var errUnknownLevel = errors.New("unknown level")

type testSample struct {
	ID    string
	Count int
	Flag  bool
	Ratio float64
	Price float64
	When  time.Time
	Day   time.Time
	Blob  []byte
	Token uuid.UUID
	Link  URI
	Title string
	Level testLevel
	Extra any
	Nick  *string
}

func (*testSample) GraphType() *TypeDef { return sampleDef }

var sampleDef = &TypeDef{
	Name:      "Sample",
	Type:      sampleNS + "Sample",
	Namespace: sampleNS,
	IDField:   "ID",
	New:       func() Record { return new(testSample) },
	Fields: func() []FieldDecl {
		return []FieldDecl{
			Field("ID", One(func(s *testSample) *string { return &s.ID })),
			Field("Count", One(func(s *testSample) *int { return &s.Count }), Property(sampleNS+"count")),
			Field("Flag", One(func(s *testSample) *bool { return &s.Flag }), Property(sampleNS+"flag")),
			Field("Ratio", One(func(s *testSample) *float64 { return &s.Ratio }), Property(sampleNS+"ratio")),
			Field("Price", One(func(s *testSample) *float64 { return &s.Price }),
				Property(sampleNS+"price", Datatype(rdf.XSDDecimal.Value))),
			Field("When", One(func(s *testSample) *time.Time { return &s.When }), Property(sampleNS+"when")),
			Field("Day", One(func(s *testSample) *time.Time { return &s.Day }),
				Property(sampleNS+"day", Datatype(rdf.XSDDate.Value))),
			Field("Blob", One(func(s *testSample) *[]byte { return &s.Blob }), Property(sampleNS+"blob")),
			Field("Token", One(func(s *testSample) *uuid.UUID { return &s.Token }), Property(sampleNS+"token")),
			Field("Link", One(func(s *testSample) *URI { return &s.Link }), Property(sampleNS+"link")),
			Field("Title", One(func(s *testSample) *string { return &s.Title }),
				Property(sampleNS+"title", Language("en"))),
			Field("Level", One(func(s *testSample) *testLevel { return &s.Level }), Property(sampleNS+"level")),
			Field("Extra", One(func(s *testSample) *any { return &s.Extra }), Property(sampleNS+"extra")),
			Field("Nick", Opt(func(s *testSample) **string { return &s.Nick }), Property(sampleNS+"nick")),
		}
	},
}

// testThing has no namespace and no rdf:type.
type testThing struct {
	ID    string
	Label string
}

func (t *testThing) GraphType() *TypeDef { return thingDef }

var thingDef = &TypeDef{
	Name:    "Thing",
	IDField: "ID",
	New:     func() Record { return new(testThing) },
	Fields:  thingFields,
}

func thingFields() []FieldDecl {
	return []FieldDecl{
		Field("ID", One(func(t *testThing) *string { return &t.ID })),
		Field("Label", One(func(t *testThing) *string { return &t.Label }), Property("http://example.org/label")),
	}
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

type testColor string

const colorRed testColor = "red"

type testRank int

const rankThird testRank = 3

func (r testRank) String() string { return "rank" + strconv.Itoa(int(r)) }

type testPalette struct {
	ID     string
	Color  testColor
	Rank   testRank
	Shades []testColor
	Weight uint8
	Ranks  []testRank
	Spare  *testRank
}

func (*testPalette) GraphType() *TypeDef { return paletteDef }

var paletteDef = &TypeDef{
	Name:      "Palette",
	Type:      sampleNS + "Palette",
	Namespace: sampleNS,
	IDField:   "ID",
	New:       func() Record { return new(testPalette) },
	Fields: func() []FieldDecl {
		return []FieldDecl{
			Field("ID", One(func(p *testPalette) *string { return &p.ID })),
			Field("Color", One(func(p *testPalette) *testColor { return &p.Color }), Property(sampleNS+"color")),
			Field("Rank", One(func(p *testPalette) *testRank { return &p.Rank }), Property(sampleNS+"rank")),
			Field("Shades", Many(func(p *testPalette) *[]testColor { return &p.Shades }), Property(sampleNS+"shade")),
			Field("Weight", One(func(p *testPalette) *uint8 { return &p.Weight }), Property(sampleNS+"weight")),
			Field("Ranks", Many(func(p *testPalette) *[]testRank { return &p.Ranks }), Property(sampleNS+"ranks")),
			Field("Spare", Opt(func(p *testPalette) **testRank { return &p.Spare }), Property(sampleNS+"spare")),
		}
	},
}
