package foaf

import (
	"github.com/geoknoesis/rdfmodel/mapping"
)

// Naming holds the naming properties of an agent.
type Naming struct {
	Name  []string `yaml:"name,omitempty"`
	Nick  []string `yaml:"nick,omitempty"`
	Title []string `yaml:"title,omitempty"`
}

// NamingFields declares the Naming properties of record type R.
func NamingFields[R mapping.Record](get func(R) *Naming) []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("Name", mapping.Many(func(r R) *[]string { return &get(r).Name }), mapping.Property(Name)),
		mapping.Field("Nick", mapping.Many(func(r R) *[]string { return &get(r).Nick }), mapping.Property(Nick)),
		mapping.Field("Title", mapping.Many(func(r R) *[]string { return &get(r).Title }), mapping.Property(Title)),
	}
}

// Contact holds the online presence of an agent. Values that look like
// absolute URIs are written as resources, anything else as literals.
type Contact struct {
	Mbox     []mapping.URI `yaml:"mbox,omitempty"`
	Homepage []mapping.URI `yaml:"homepage,omitempty"`
	Weblog   []mapping.URI `yaml:"weblog,omitempty"`
	Img      []mapping.URI `yaml:"img,omitempty"`
	JabberID []string      `yaml:"jabberID,omitempty"`
}

// ContactFields declares the Contact properties of record type R.
func ContactFields[R mapping.Record](get func(R) *Contact) []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("Mbox", mapping.Many(func(r R) *[]mapping.URI { return &get(r).Mbox }), mapping.Property(Mbox)),
		mapping.Field("Homepage", mapping.Many(func(r R) *[]mapping.URI { return &get(r).Homepage }), mapping.Property(Homepage)),
		mapping.Field("Weblog", mapping.Many(func(r R) *[]mapping.URI { return &get(r).Weblog }), mapping.Property(Weblog)),
		mapping.Field("Img", mapping.Many(func(r R) *[]mapping.URI { return &get(r).Img }), mapping.Property(Img)),
		mapping.Field("JabberID", mapping.Many(func(r R) *[]string { return &get(r).JabberID }), mapping.Property(JabberID)),
	}
}

// Agent is a foaf:Agent.
type Agent struct {
	ID      string `yaml:"id,omitempty"`
	Naming  `yaml:",inline"`
	Contact `yaml:",inline"`
	Account []mapping.Ref[*OnlineAccount] `yaml:"account,omitempty"`
	Made    []mapping.URI                 `yaml:"made,omitempty"`
}

// AgentType maps Agent.
var AgentType = &mapping.TypeDef{
	Name:     "foaf:Agent",
	Type:     ClassAgent,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Agent) },
	Fields:   agentFields,
}

// GraphType returns AgentType.
func (*Agent) GraphType() *mapping.TypeDef { return AgentType }

func agentFields() []mapping.FieldDecl {
	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(a *Agent) *string { return &a.ID })),
		mapping.Field("Account", mapping.Many(func(a *Agent) *[]mapping.Ref[*OnlineAccount] { return &a.Account }), mapping.Property(Account)),
		mapping.Field("Made", mapping.Many(func(a *Agent) *[]mapping.URI { return &a.Made }), mapping.Property(Made)),
	}
	fields = append(fields, NamingFields(func(a *Agent) *Naming { return &a.Naming })...)
	return append(fields, ContactFields(func(a *Agent) *Contact { return &a.Contact })...)
}

// Person is a foaf:Person.
type Person struct {
	ID                string `yaml:"id,omitempty"`
	Naming            `yaml:",inline"`
	Contact           `yaml:",inline"`
	GivenName         []string                      `yaml:"givenName,omitempty"`
	FamilyName        []string                      `yaml:"familyName,omitempty"`
	Gender            string                        `yaml:"gender,omitempty"`
	Birthday          string                        `yaml:"birthday,omitempty"`
	Age               *int                          `yaml:"age,omitempty"`
	Knows             []mapping.Ref[*Person]        `yaml:"knows,omitempty"`
	Account           []mapping.Ref[*OnlineAccount] `yaml:"account,omitempty"`
	BasedNear         []mapping.URI                 `yaml:"basedNear,omitempty"`
	CurrentProject    []mapping.URI                 `yaml:"currentProject,omitempty"`
	PastProject       []mapping.URI                 `yaml:"pastProject,omitempty"`
	WorkplaceHomepage []mapping.URI                 `yaml:"workplaceHomepage,omitempty"`
	SchoolHomepage    []mapping.URI                 `yaml:"schoolHomepage,omitempty"`
	Interest          []mapping.Ref[*Document]      `yaml:"interest,omitempty"`
}

// PersonType maps Person.
var PersonType = &mapping.TypeDef{
	Name:     "foaf:Person",
	Type:     ClassPerson,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Person) },
	Fields:   personFields,
}

// GraphType returns PersonType.
func (*Person) GraphType() *mapping.TypeDef { return PersonType }

func personFields() []mapping.FieldDecl {
	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(p *Person) *string { return &p.ID })),
	}
	fields = append(fields, NamingFields(func(p *Person) *Naming { return &p.Naming })...)
	fields = append(fields, ContactFields(func(p *Person) *Contact { return &p.Contact })...)
	return append(fields,
		mapping.Field("GivenName", mapping.Many(func(p *Person) *[]string { return &p.GivenName }), mapping.Property(GivenName)),
		mapping.Field("FamilyName", mapping.Many(func(p *Person) *[]string { return &p.FamilyName }), mapping.Property(FamilyName)),
		mapping.Field("Gender", mapping.One(func(p *Person) *string { return &p.Gender }), mapping.Property(Gender)),
		mapping.Field("Birthday", mapping.One(func(p *Person) *string { return &p.Birthday }), mapping.Property(Birthday)),
		mapping.Field("Age", mapping.Opt(func(p *Person) **int { return &p.Age }), mapping.Property(Age)),
		mapping.Field("Knows", mapping.Many(func(p *Person) *[]mapping.Ref[*Person] { return &p.Knows }), mapping.Property(Knows)),
		mapping.Field("Account", mapping.Many(func(p *Person) *[]mapping.Ref[*OnlineAccount] { return &p.Account }), mapping.Property(Account)),
		mapping.Field("BasedNear", mapping.Many(func(p *Person) *[]mapping.URI { return &p.BasedNear }), mapping.Property(BasedNear)),
		mapping.Field("CurrentProject", mapping.Many(func(p *Person) *[]mapping.URI { return &p.CurrentProject }), mapping.Property(CurrentProject)),
		mapping.Field("PastProject", mapping.Many(func(p *Person) *[]mapping.URI { return &p.PastProject }), mapping.Property(PastProject)),
		mapping.Field("WorkplaceHomepage", mapping.Many(func(p *Person) *[]mapping.URI { return &p.WorkplaceHomepage }), mapping.Property(WorkplaceHomepage)),
		mapping.Field("SchoolHomepage", mapping.Many(func(p *Person) *[]mapping.URI { return &p.SchoolHomepage }), mapping.Property(SchoolHomepage)),
		mapping.Field("Interest", mapping.Many(func(p *Person) *[]mapping.Ref[*Document] { return &p.Interest }), mapping.Property(Interest)),
	)
}

// Organization is a foaf:Organization.
type Organization struct {
	ID      string `yaml:"id,omitempty"`
	Naming  `yaml:",inline"`
	Contact `yaml:",inline"`
	Member  []mapping.Ref[*Person] `yaml:"member,omitempty"`
}

// OrganizationType maps Organization.
var OrganizationType = &mapping.TypeDef{
	Name:     "foaf:Organization",
	Type:     ClassOrganization,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Organization) },
	Fields:   organizationFields,
}

// GraphType returns OrganizationType.
func (*Organization) GraphType() *mapping.TypeDef { return OrganizationType }

func organizationFields() []mapping.FieldDecl {
	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(o *Organization) *string { return &o.ID })),
		mapping.Field("Member", mapping.Many(func(o *Organization) *[]mapping.Ref[*Person] { return &o.Member }), mapping.Property(Member)),
	}
	fields = append(fields, NamingFields(func(o *Organization) *Naming { return &o.Naming })...)
	return append(fields, ContactFields(func(o *Organization) *Contact { return &o.Contact })...)
}

// Group is a foaf:Group.
type Group struct {
	ID      string `yaml:"id,omitempty"`
	Naming  `yaml:",inline"`
	Contact `yaml:",inline"`
	Member  []mapping.Ref[*Agent] `yaml:"member,omitempty"`
}

// GroupType maps Group.
var GroupType = &mapping.TypeDef{
	Name:     "foaf:Group",
	Type:     ClassGroup,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Group) },
	Fields:   groupFields,
}

// GraphType returns GroupType.
func (*Group) GraphType() *mapping.TypeDef { return GroupType }

func groupFields() []mapping.FieldDecl {
	fields := []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(g *Group) *string { return &g.ID })),
		mapping.Field("Member", mapping.Many(func(g *Group) *[]mapping.Ref[*Agent] { return &g.Member }), mapping.Property(Member)),
	}
	fields = append(fields, NamingFields(func(g *Group) *Naming { return &g.Naming })...)
	return append(fields, ContactFields(func(g *Group) *Contact { return &g.Contact })...)
}

// Document is a foaf:Document.
type Document struct {
	ID           string                 `yaml:"id,omitempty"`
	Title        []string               `yaml:"title,omitempty"`
	Topic        []mapping.URI          `yaml:"topic,omitempty"`
	PrimaryTopic mapping.URI            `yaml:"primaryTopic,omitempty"`
	Maker        []mapping.Ref[*Person] `yaml:"maker,omitempty"`
}

// DocumentType maps Document.
var DocumentType = &mapping.TypeDef{
	Name:     "foaf:Document",
	Type:     ClassDocument,
	Prefixes: prefixes,
	IDField:  "ID",
	New:      func() mapping.Record { return new(Document) },
	Fields:   documentFields,
}

// GraphType returns DocumentType.
func (*Document) GraphType() *mapping.TypeDef { return DocumentType }

func documentFields() []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(d *Document) *string { return &d.ID })),
		mapping.Field("Title", mapping.Many(func(d *Document) *[]string { return &d.Title }), mapping.Property(Title)),
		mapping.Field("Topic", mapping.Many(func(d *Document) *[]mapping.URI { return &d.Topic }), mapping.Property(Topic)),
		mapping.Field("PrimaryTopic", mapping.One(func(d *Document) *mapping.URI { return &d.PrimaryTopic }), mapping.Property(PrimaryTopic)),
		mapping.Field("Maker", mapping.Many(func(d *Document) *[]mapping.Ref[*Person] { return &d.Maker }), mapping.Property(Maker)),
	}
}

// OnlineAccount is a foaf:OnlineAccount.
type OnlineAccount struct {
	ID                     string      `yaml:"id,omitempty"`
	AccountName            []string    `yaml:"accountName,omitempty"`
	AccountServiceHomepage mapping.URI `yaml:"accountServiceHomepage,omitempty"`
}

// OnlineAccountType maps OnlineAccount. Accounts usually have no identifier of
// their own and are written as blank nodes.
var OnlineAccountType = &mapping.TypeDef{
	Name:          "foaf:OnlineAccount",
	Type:          ClassOnlineAccount,
	Prefixes:      prefixes,
	IDField:       "ID",
	DisableAutoID: true,
	New:           func() mapping.Record { return new(OnlineAccount) },
	Fields:        onlineAccountFields,
}

// GraphType returns OnlineAccountType.
func (*OnlineAccount) GraphType() *mapping.TypeDef { return OnlineAccountType }

func onlineAccountFields() []mapping.FieldDecl {
	return []mapping.FieldDecl{
		mapping.Field("ID", mapping.One(func(a *OnlineAccount) *string { return &a.ID })),
		mapping.Field("AccountName", mapping.Many(func(a *OnlineAccount) *[]string { return &a.AccountName }), mapping.Property(AccountName)),
		mapping.Field("AccountServiceHomepage", mapping.One(func(a *OnlineAccount) *mapping.URI { return &a.AccountServiceHomepage }),
			mapping.Property(AccountServiceHomepage)),
	}
}
