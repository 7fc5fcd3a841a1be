// Package mapping converts typed Go records to and from rdf graphs.
//
// A record type is a pointer to a struct that returns a *TypeDef from
// GraphType. The TypeDef lists field declarations; each binds a field through
// a typed accessor (One, Opt, Many) and maps it to a predicate with a Property
// annotation. Nothing is discovered by reflection.
//
//	type Person struct {
//	    ID   string
//	    Name string
//	    Age  int
//	}
//
//	var PersonType = &mapping.TypeDef{
//	    Name:      "Person",
//	    Type:      "http://xmlns.com/foaf/0.1/Person",
//	    Namespace: "http://example.org/people/",
//	    IDField:   "ID",
//	    New:       func() mapping.Record { return new(Person) },
//	    Fields: func() []mapping.FieldDecl {
//	        return []mapping.FieldDecl{
//	            mapping.Field("ID", mapping.One(func(p *Person) *string { return &p.ID })),
//	            mapping.Field("Name", mapping.One(func(p *Person) *string { return &p.Name }),
//	                mapping.Property("http://xmlns.com/foaf/0.1/name")),
//	            mapping.Field("Age", mapping.One(func(p *Person) *int { return &p.Age }),
//	                mapping.Property("http://xmlns.com/foaf/0.1/age")),
//	        }
//	    },
//	}
//
//	func (*Person) GraphType() *mapping.TypeDef { return PersonType }
//
// Encode writes a record and its nested records into a graph; Decode reads
// one back, inferring the subject from the type when none is given. Marshal
// and Unmarshal do the same through a textual format.
//
// Schemas are compiled once per TypeDef and cached in a Registry. A field
// declaring both a language and a datatype makes the whole type unusable with
// ErrSchemaConfiguration.
package mapping
