// Package dcterms maps the DCMI Metadata Terms vocabulary and the DCMI
// Collection Description frequency vocabulary.
package dcterms

const (
	// Namespace is the DCMI Metadata Terms namespace base.
	Namespace = "http://purl.org/dc/terms/"
	// FreqNamespace is the DCMI Collection Description frequency namespace.
	FreqNamespace = "http://purl.org/cld/freq/"

	Prefix     = "dcterms"
	FreqPrefix = "freq"
)

// Classes.
const (
	ClassAgent                 = Namespace + "Agent"
	ClassBibliographicResource = Namespace + "BibliographicResource"
	ClassFileFormat            = Namespace + "FileFormat"
	ClassFrequency             = Namespace + "Frequency"
	ClassLicenseDocument       = Namespace + "LicenseDocument"
	ClassLocation              = Namespace + "Location"
	ClassMediaType             = Namespace + "MediaType"
	ClassPeriodOfTime          = Namespace + "PeriodOfTime"
	ClassRightsStatement       = Namespace + "RightsStatement"
	ClassStandard              = Namespace + "Standard"
)

// Properties.
const (
	Abstract              = Namespace + "abstract"
	AccessRights          = Namespace + "accessRights"
	AccrualPeriodicity    = Namespace + "accrualPeriodicity"
	Alternative           = Namespace + "alternative"
	Audience              = Namespace + "audience"
	Available             = Namespace + "available"
	BibliographicCitation = Namespace + "bibliographicCitation"
	ConformsTo            = Namespace + "conformsTo"
	Contributor           = Namespace + "contributor"
	Coverage              = Namespace + "coverage"
	Created               = Namespace + "created"
	Creator               = Namespace + "creator"
	Date                  = Namespace + "date"
	DateAccepted          = Namespace + "dateAccepted"
	DateCopyrighted       = Namespace + "dateCopyrighted"
	DateSubmitted         = Namespace + "dateSubmitted"
	Description           = Namespace + "description"
	Extent                = Namespace + "extent"
	Format                = Namespace + "format"
	HasPart               = Namespace + "hasPart"
	HasVersion            = Namespace + "hasVersion"
	Identifier            = Namespace + "identifier"
	IsPartOf              = Namespace + "isPartOf"
	IsReferencedBy        = Namespace + "isReferencedBy"
	IsReplacedBy          = Namespace + "isReplacedBy"
	IsVersionOf           = Namespace + "isVersionOf"
	Issued                = Namespace + "issued"
	Language              = Namespace + "language"
	License               = Namespace + "license"
	Mediator              = Namespace + "mediator"
	Modified              = Namespace + "modified"
	Name                  = Namespace + "name"
	Publisher             = Namespace + "publisher"
	References            = Namespace + "references"
	Relation              = Namespace + "relation"
	Replaces              = Namespace + "replaces"
	Requires              = Namespace + "requires"
	Rights                = Namespace + "rights"
	Source                = Namespace + "source"
	Spatial               = Namespace + "spatial"
	Subject               = Namespace + "subject"
	TableOfContents       = Namespace + "tableOfContents"
	Temporal              = Namespace + "temporal"
	Title                 = Namespace + "title"
	Type                  = Namespace + "type"
	Valid                 = Namespace + "valid"
)

var prefixes = map[string]string{
	Prefix:     Namespace,
	FreqPrefix: FreqNamespace,
}
