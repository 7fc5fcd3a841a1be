// Package skos maps the Simple Knowledge Organization System vocabulary.
//
// Labels are kept as literals so that their language tags survive a round
// trip; build them with rdf.LangLiteral.
package skos

const (
	// Namespace is the SKOS namespace base.
	Namespace = "http://www.w3.org/2004/02/skos/core#"
	Prefix    = "skos"
)

// Classes.
const (
	ClassConcept           = Namespace + "Concept"
	ClassConceptScheme     = Namespace + "ConceptScheme"
	ClassCollection        = Namespace + "Collection"
	ClassOrderedCollection = Namespace + "OrderedCollection"
)

// Properties.
const (
	PrefLabel          = Namespace + "prefLabel"
	AltLabel           = Namespace + "altLabel"
	HiddenLabel        = Namespace + "hiddenLabel"
	Notation           = Namespace + "notation"
	Note               = Namespace + "note"
	ChangeNote         = Namespace + "changeNote"
	Definition         = Namespace + "definition"
	EditorialNote      = Namespace + "editorialNote"
	Example            = Namespace + "example"
	HistoryNote        = Namespace + "historyNote"
	ScopeNote          = Namespace + "scopeNote"
	InScheme           = Namespace + "inScheme"
	HasTopConcept      = Namespace + "hasTopConcept"
	TopConceptOf       = Namespace + "topConceptOf"
	Broader            = Namespace + "broader"
	Narrower           = Namespace + "narrower"
	BroaderTransitive  = Namespace + "broaderTransitive"
	NarrowerTransitive = Namespace + "narrowerTransitive"
	Related            = Namespace + "related"
	CloseMatch         = Namespace + "closeMatch"
	ExactMatch         = Namespace + "exactMatch"
	BroadMatch         = Namespace + "broadMatch"
	NarrowMatch        = Namespace + "narrowMatch"
	RelatedMatch       = Namespace + "relatedMatch"
	Member             = Namespace + "member"
	MemberList         = Namespace + "memberList"
)

var prefixes = map[string]string{Prefix: Namespace}
