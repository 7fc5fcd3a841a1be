// Package foaf maps the Friend of a Friend vocabulary.
//
// Record types are built from capability structs: Naming and Contact hold the
// properties every agent shares and are embedded in Agent, Person,
// Organization and Group. Each capability has a field builder (NamingFields,
// ContactFields) that record types use in their field declarations.
package foaf

// Namespace is the FOAF namespace base.
const Namespace = "http://xmlns.com/foaf/0.1/"

// Prefix is the conventional prefix bound to Namespace.
const Prefix = "foaf"

// Classes.
const (
	ClassAgent         = Namespace + "Agent"
	ClassPerson        = Namespace + "Person"
	ClassOrganization  = Namespace + "Organization"
	ClassGroup         = Namespace + "Group"
	ClassDocument      = Namespace + "Document"
	ClassImage         = Namespace + "Image"
	ClassOnlineAccount = Namespace + "OnlineAccount"
	ClassProject       = Namespace + "Project"
)

// Properties.
const (
	Name                   = Namespace + "name"
	Nick                   = Namespace + "nick"
	Title                  = Namespace + "title"
	Mbox                   = Namespace + "mbox"
	Homepage               = Namespace + "homepage"
	Weblog                 = Namespace + "weblog"
	Account                = Namespace + "account"
	Made                   = Namespace + "made"
	Img                    = Namespace + "img"
	Depiction              = Namespace + "depiction"
	JabberID               = Namespace + "jabberID"
	Status                 = Namespace + "status"
	GivenName              = Namespace + "givenName"
	FamilyName             = Namespace + "familyName"
	FirstName              = Namespace + "firstName"
	Surname                = Namespace + "surname"
	Gender                 = Namespace + "gender"
	Birthday               = Namespace + "birthday"
	Age                    = Namespace + "age"
	Knows                  = Namespace + "knows"
	BasedNear              = Namespace + "based_near"
	CurrentProject         = Namespace + "currentProject"
	PastProject            = Namespace + "pastProject"
	Publications           = Namespace + "publications"
	WorkplaceHomepage      = Namespace + "workplaceHomepage"
	SchoolHomepage         = Namespace + "schoolHomepage"
	Interest               = Namespace + "interest"
	Member                 = Namespace + "member"
	Topic                  = Namespace + "topic"
	PrimaryTopic           = Namespace + "primaryTopic"
	Maker                  = Namespace + "maker"
	AccountName            = Namespace + "accountName"
	AccountServiceHomepage = Namespace + "accountServiceHomepage"
)

var prefixes = map[string]string{Prefix: Namespace}
