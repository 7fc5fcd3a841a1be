package dcterms

import (
	"time"

	"github.com/geoknoesis/rdfmodel/mapping"
)

// Agent is a dcterms:Agent, a resource that acts or has the power to act.
type Agent struct {
	ID    string     `yaml:"id,omitempty"`
	Name  *string    `yaml:"name,omitempty"`
	Valid *time.Time `yaml:"valid,omitempty"`
}

// AgentType maps Agent.
var AgentType = &mapping.TypeDef{
	Name:     "dcterms:Agent",
	Type:     ClassAgent,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Agent) },
	Fields: func() []mapping.FieldDecl {
		return []mapping.FieldDecl{
			mapping.Field("ID", mapping.One(func(a *Agent) *string { return &a.ID })),
			mapping.Field("Name", mapping.Opt(func(a *Agent) **string { return &a.Name }), mapping.Property(Name)),
			mapping.Field("Valid", mapping.Opt(func(a *Agent) **time.Time { return &a.Valid }), mapping.Property(Valid)),
		}
	},
}

// GraphType returns AgentType.
func (*Agent) GraphType() *mapping.TypeDef { return AgentType }

// Descriptive holds the descriptive metadata shared by described resources.
// Title and Description are English-tagged.
type Descriptive struct {
	Title       *string               `yaml:"title,omitempty"`
	Description *string               `yaml:"description,omitempty"`
	Subject     []string              `yaml:"subject,omitempty"`
	Creator     mapping.Ref[*Agent]   `yaml:"creator,omitempty"`
	Publisher   mapping.Ref[*Agent]   `yaml:"publisher,omitempty"`
	Contributor []mapping.Ref[*Agent] `yaml:"contributor,omitempty"`
}

// DescriptiveFields declares the Descriptive properties of record type R.
func DescriptiveFields[R mapping.Record](get func(R) *Descriptive) []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("Title", mapping.Opt(func(r R) **string { return &get(r).Title }),
			mapping.Property(Title, mapping.Language("en"))),
		mapping.Field("Description", mapping.Opt(func(r R) **string { return &get(r).Description }),
			mapping.Property(Description, mapping.Language("en"))),
		mapping.Field("Subject", mapping.Many(func(r R) *[]string { return &get(r).Subject }), mapping.Property(Subject)),
		mapping.Field("Creator", mapping.One(func(r R) *mapping.Ref[*Agent] { return &get(r).Creator }), mapping.Property(Creator)),
		mapping.Field("Publisher", mapping.One(func(r R) *mapping.Ref[*Agent] { return &get(r).Publisher }), mapping.Property(Publisher)),
		mapping.Field("Contributor", mapping.Many(func(r R) *[]mapping.Ref[*Agent] { return &get(r).Contributor }),
			mapping.Property(Contributor)),
	}
}

// Dates holds the lifecycle dates of a resource.
type Dates struct {
	Date      *time.Time `yaml:"date,omitempty"`
	Created   *time.Time `yaml:"created,omitempty"`
	Issued    *time.Time `yaml:"issued,omitempty"`
	Modified  *time.Time `yaml:"modified,omitempty"`
	Available *time.Time `yaml:"available,omitempty"`
}

// DatesFields declares the Dates properties of record type R.
func DatesFields[R mapping.Record](get func(R) *Dates) []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("Date", mapping.Opt(func(r R) **time.Time { return &get(r).Date }), mapping.Property(Date)),
		mapping.Field("Created", mapping.Opt(func(r R) **time.Time { return &get(r).Created }), mapping.Property(Created)),
		mapping.Field("Issued", mapping.Opt(func(r R) **time.Time { return &get(r).Issued }), mapping.Property(Issued)),
		mapping.Field("Modified", mapping.Opt(func(r R) **time.Time { return &get(r).Modified }), mapping.Property(Modified)),
		mapping.Field("Available", mapping.Opt(func(r R) **time.Time { return &get(r).Available }), mapping.Property(Available)),
	}
}

// BibliographicResource is a dcterms:BibliographicResource carrying the full
// Dublin Core description.
type BibliographicResource struct {
	ID          string `yaml:"id,omitempty"`
	Descriptive `yaml:",inline"`
	Dates       `yaml:",inline"`

	Identifier            *string       `yaml:"identifier,omitempty"`
	Type                  mapping.URI   `yaml:"type,omitempty"`
	Format                mapping.URI   `yaml:"format,omitempty"`
	Source                mapping.URI   `yaml:"source,omitempty"`
	Language              mapping.URI   `yaml:"language,omitempty"`
	License               mapping.URI   `yaml:"license,omitempty"`
	Coverage              mapping.URI   `yaml:"coverage,omitempty"`
	ConformsTo            mapping.URI   `yaml:"conformsTo,omitempty"`
	Spatial               mapping.URI   `yaml:"spatial,omitempty"`
	IsPartOf              mapping.URI   `yaml:"isPartOf,omitempty"`
	HasPart               []mapping.URI `yaml:"hasPart,omitempty"`
	Relation              []mapping.URI `yaml:"relation,omitempty"`
	References            []mapping.URI `yaml:"references,omitempty"`
	Rights                *string       `yaml:"rights,omitempty"`
	Abstract              *string       `yaml:"abstract,omitempty"`
	Alternative           *string       `yaml:"alternative,omitempty"`
	BibliographicCitation *string       `yaml:"bibliographicCitation,omitempty"`
	TableOfContents       *string       `yaml:"tableOfContents,omitempty"`
	AccrualPeriodicity    *Frequency    `yaml:"accrualPeriodicity,omitempty"`
}

// BibliographicResourceType maps BibliographicResource.
var BibliographicResourceType = &mapping.TypeDef{
	Name:     "dcterms:BibliographicResource",
	Type:     ClassBibliographicResource,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(BibliographicResource) },
	Fields:   bibliographicResourceFields,
}

// GraphType returns BibliographicResourceType.
func (*BibliographicResource) GraphType() *mapping.TypeDef { return BibliographicResourceType }

func bibliographicResourceFields() []mapping.FieldDecl {
	type br = BibliographicResource
	uri := func(name, predicate string, field func(*br) *mapping.URI) mapping.FieldDecl {
		return mapping.Field(name, mapping.One(field), mapping.Property(predicate))
	}
	uris := func(name, predicate string, field func(*br) *[]mapping.URI) mapping.FieldDecl {
		return mapping.Field(name, mapping.Many(field), mapping.Property(predicate))
	}
	text := func(name, predicate string, field func(*br) **string) mapping.FieldDecl {
		return mapping.Field(name, mapping.Opt(field), mapping.Property(predicate))
	}

	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(r *br) *string { return &r.ID })),
		text("Identifier", Identifier, func(r *br) **string { return &r.Identifier }),
		uri("Type", Type, func(r *br) *mapping.URI { return &r.Type }),
		uri("Format", Format, func(r *br) *mapping.URI { return &r.Format }),
		uri("Source", Source, func(r *br) *mapping.URI { return &r.Source }),
		uri("Language", Language, func(r *br) *mapping.URI { return &r.Language }),
		uri("License", License, func(r *br) *mapping.URI { return &r.License }),
		uri("Coverage", Coverage, func(r *br) *mapping.URI { return &r.Coverage }),
		uri("ConformsTo", ConformsTo, func(r *br) *mapping.URI { return &r.ConformsTo }),
		uri("Spatial", Spatial, func(r *br) *mapping.URI { return &r.Spatial }),
		uri("IsPartOf", IsPartOf, func(r *br) *mapping.URI { return &r.IsPartOf }),
		uris("HasPart", HasPart, func(r *br) *[]mapping.URI { return &r.HasPart }),
		uris("Relation", Relation, func(r *br) *[]mapping.URI { return &r.Relation }),
		uris("References", References, func(r *br) *[]mapping.URI { return &r.References }),
		text("Rights", Rights, func(r *br) **string { return &r.Rights }),
		text("Abstract", Abstract, func(r *br) **string { return &r.Abstract }),
		text("Alternative", Alternative, func(r *br) **string { return &r.Alternative }),
		text("BibliographicCitation", BibliographicCitation, func(r *br) **string { return &r.BibliographicCitation }),
		text("TableOfContents", TableOfContents, func(r *br) **string { return &r.TableOfContents }),
		mapping.Field("AccrualPeriodicity", mapping.Opt(func(r *br) **Frequency { return &r.AccrualPeriodicity }),
			mapping.Property(AccrualPeriodicity, mapping.WithSerializer(frequencyTerm))),
	}
	fields = append(fields, DescriptiveFields(func(r *br) *Descriptive { return &r.Descriptive })...)
	return append(fields, DatesFields(func(r *br) *Dates { return &r.Dates })...)
}
