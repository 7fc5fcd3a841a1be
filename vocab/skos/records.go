package skos

import (
	"github.com/geoknoesis/rdfmodel/mapping"
	"github.com/geoknoesis/rdfmodel/rdf"
)

// Labelling holds the lexical labels and notations of a resource.
type Labelling struct {
	PrefLabel   []rdf.Literal `yaml:"prefLabel,omitempty"`
	AltLabel    []rdf.Literal `yaml:"altLabel,omitempty"`
	HiddenLabel []rdf.Literal `yaml:"hiddenLabel,omitempty"`
	Notation    []string      `yaml:"notation,omitempty"`
}

// LabellingFields declares the Labelling properties of record type R.
func LabellingFields[R mapping.Record](get func(R) *Labelling) []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("PrefLabel", mapping.Many(func(r R) *[]rdf.Literal { return &get(r).PrefLabel }), mapping.Property(PrefLabel)),
		mapping.Field("AltLabel", mapping.Many(func(r R) *[]rdf.Literal { return &get(r).AltLabel }), mapping.Property(AltLabel)),
		mapping.Field("HiddenLabel", mapping.Many(func(r R) *[]rdf.Literal { return &get(r).HiddenLabel }), mapping.Property(HiddenLabel)),
		mapping.Field("Notation", mapping.Many(func(r R) *[]string { return &get(r).Notation }), mapping.Property(Notation)),
	}
}

// Documentation holds the SKOS documentation notes.
type Documentation struct {
	Note          []string `yaml:"note,omitempty"`
	Definition    []string `yaml:"definition,omitempty"`
	ScopeNote     []string `yaml:"scopeNote,omitempty"`
	Example       []string `yaml:"example,omitempty"`
	HistoryNote   []string `yaml:"historyNote,omitempty"`
	EditorialNote []string `yaml:"editorialNote,omitempty"`
	ChangeNote    []string `yaml:"changeNote,omitempty"`
}

// DocumentationFields declares the Documentation properties of record type R.
func DocumentationFields[R mapping.Record](get func(R) *Documentation) []mapping.FieldDecl {
	notes := []struct {
		name, predicate string
		field           func(*Documentation) *[]string
	}{
		{"Note", Note, func(d *Documentation) *[]string { return &d.Note }},
		{"Definition", Definition, func(d *Documentation) *[]string { return &d.Definition }},
		{"ScopeNote", ScopeNote, func(d *Documentation) *[]string { return &d.ScopeNote }},
		{"Example", Example, func(d *Documentation) *[]string { return &d.Example }},
		{"HistoryNote", HistoryNote, func(d *Documentation) *[]string { return &d.HistoryNote }},
		{"EditorialNote", EditorialNote, func(d *Documentation) *[]string { return &d.EditorialNote }},
		{"ChangeNote", ChangeNote, func(d *Documentation) *[]string { return &d.ChangeNote }},
	}
	fields := make([]mapping.FieldDecl, 0, len(notes))
	for _, n := range notes {
		field := n.field
		fields = append(fields, mapping.Field(n.name,
			mapping.Many(func(r R) *[]string { return field(get(r)) }),
			mapping.Property(n.predicate)))
	}
	return fields
}

// Concept is a skos:Concept.
type Concept struct {
	ID            string `yaml:"id,omitempty"`
	Labelling     `yaml:",inline"`
	Documentation `yaml:",inline"`

	InScheme     []mapping.Ref[*ConceptScheme] `yaml:"inScheme,omitempty"`
	TopConceptOf []mapping.Ref[*ConceptScheme] `yaml:"topConceptOf,omitempty"`
	Broader      []mapping.Ref[*Concept]       `yaml:"broader,omitempty"`
	Narrower     []mapping.Ref[*Concept]       `yaml:"narrower,omitempty"`
	Related      []mapping.Ref[*Concept]       `yaml:"related,omitempty"`
	CloseMatch   []mapping.URI                 `yaml:"closeMatch,omitempty"`
	ExactMatch   []mapping.URI                 `yaml:"exactMatch,omitempty"`
	BroadMatch   []mapping.URI                 `yaml:"broadMatch,omitempty"`
	NarrowMatch  []mapping.URI                 `yaml:"narrowMatch,omitempty"`
	RelatedMatch []mapping.URI                 `yaml:"relatedMatch,omitempty"`
}

// ConceptType maps Concept.
var ConceptType = &mapping.TypeDef{
	Name:     "skos:Concept",
	Type:     ClassConcept,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Concept) },
	Fields:   conceptFields,
}

// GraphType returns ConceptType.
func (*Concept) GraphType() *mapping.TypeDef { return ConceptType }

func conceptFields() []mapping.FieldDecl {
	concepts := func(name, predicate string, field func(*Concept) *[]mapping.Ref[*Concept]) mapping.FieldDecl {
		return mapping.Field(name, mapping.Many(field), mapping.Property(predicate))
	}
	schemes := func(name, predicate string, field func(*Concept) *[]mapping.Ref[*ConceptScheme]) mapping.FieldDecl {
		return mapping.Field(name, mapping.Many(field), mapping.Property(predicate))
	}
	matches := func(name, predicate string, field func(*Concept) *[]mapping.URI) mapping.FieldDecl {
		return mapping.Field(name, mapping.Many(field), mapping.Property(predicate))
	}

	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(c *Concept) *string { return &c.ID })),
		schemes("InScheme", InScheme, func(c *Concept) *[]mapping.Ref[*ConceptScheme] { return &c.InScheme }),
		schemes("TopConceptOf", TopConceptOf, func(c *Concept) *[]mapping.Ref[*ConceptScheme] { return &c.TopConceptOf }),
		concepts("Broader", Broader, func(c *Concept) *[]mapping.Ref[*Concept] { return &c.Broader }),
		concepts("Narrower", Narrower, func(c *Concept) *[]mapping.Ref[*Concept] { return &c.Narrower }),
		concepts("Related", Related, func(c *Concept) *[]mapping.Ref[*Concept] { return &c.Related }),
		matches("CloseMatch", CloseMatch, func(c *Concept) *[]mapping.URI { return &c.CloseMatch }),
		matches("ExactMatch", ExactMatch, func(c *Concept) *[]mapping.URI { return &c.ExactMatch }),
		matches("BroadMatch", BroadMatch, func(c *Concept) *[]mapping.URI { return &c.BroadMatch }),
		matches("NarrowMatch", NarrowMatch, func(c *Concept) *[]mapping.URI { return &c.NarrowMatch }),
		matches("RelatedMatch", RelatedMatch, func(c *Concept) *[]mapping.URI { return &c.RelatedMatch }),
	}
	fields = append(fields, LabellingFields(func(c *Concept) *Labelling { return &c.Labelling })...)
	return append(fields, DocumentationFields(func(c *Concept) *Documentation { return &c.Documentation })...)
}

// ConceptScheme is a skos:ConceptScheme.
type ConceptScheme struct {
	ID            string `yaml:"id,omitempty"`
	Labelling     `yaml:",inline"`
	Documentation `yaml:",inline"`

	HasTopConcept []mapping.Ref[*Concept] `yaml:"hasTopConcept,omitempty"`
}

// ConceptSchemeType maps ConceptScheme.
var ConceptSchemeType = &mapping.TypeDef{
	Name:     "skos:ConceptScheme",
	Type:     ClassConceptScheme,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(ConceptScheme) },
	Fields:   conceptSchemeFields,
}

// GraphType returns ConceptSchemeType.
func (*ConceptScheme) GraphType() *mapping.TypeDef { return ConceptSchemeType }

func conceptSchemeFields() []mapping.FieldDecl {
	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(s *ConceptScheme) *string { return &s.ID })),
		mapping.Field("HasTopConcept", mapping.Many(func(s *ConceptScheme) *[]mapping.Ref[*Concept] { return &s.HasTopConcept }),
			mapping.Property(HasTopConcept)),
	}
	fields = append(fields, LabellingFields(func(s *ConceptScheme) *Labelling { return &s.Labelling })...)
	return append(fields, DocumentationFields(func(s *ConceptScheme) *Documentation { return &s.Documentation })...)
}

// Collection is a skos:Collection. Members may be concepts or collections, so
// they are kept as plain references.
type Collection struct {
	ID        string `yaml:"id,omitempty"`
	Labelling `yaml:",inline"`

	Member []mapping.URI `yaml:"member,omitempty"`
}

// CollectionType maps Collection.
var CollectionType = &mapping.TypeDef{
	Name:     "skos:Collection",
	Type:     ClassCollection,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Collection) },
	Fields: func() []mapping.FieldDecl {
		fields := []mapping.FieldDecl{
			mapping.Field("ID", mapping.One(func(c *Collection) *string { return &c.ID })),
			mapping.Field("Member", mapping.Many(func(c *Collection) *[]mapping.URI { return &c.Member }), mapping.Property(Member)),
		}
		return append(fields, LabellingFields(func(c *Collection) *Labelling { return &c.Labelling })...)
	},
}

// GraphType returns CollectionType.
func (*Collection) GraphType() *mapping.TypeDef { return CollectionType }
