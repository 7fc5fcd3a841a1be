package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdfmodel/mapping"
	"github.com/geoknoesis/rdfmodel/rdf"
	"github.com/geoknoesis/rdfmodel/vocab/dcterms"
	"github.com/geoknoesis/rdfmodel/vocab/foaf"
	"github.com/geoknoesis/rdfmodel/vocab/skos"
)

func newConvertCmd(a *app) *cobra.Command {
	var to, out string
	cmd := &cobra.Command{
		Use:   "convert [inputs...]",
		Short: "Convert inputs to turtle, rdfxml or json-ld",
		Long: `Parse every input into one graph and write it in the selected notation.

Inputs may be glob patterns ("data/**/*.ttl"), gzip or zstd compressed files,
or "-" for standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := to
			if !cmd.Flags().Changed("to") {
				name = a.cfg.OutputFormat
			}
			format, ok := rdf.ParseFormat(name)
			if !ok {
				return fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, name)
			}
			g, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			if out == "" {
				return rdf.Serialize(cmd.OutOrStdout(), g, format)
			}
			return writeOutput(out, func(w io.Writer) error {
				return rdf.Serialize(w, g, format)
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "turtle", "output notation (turtle, rdfxml, json-ld)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

// writeOutput creates path and hands it to write. The file's close error is
// returned when write succeeds.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [inputs...]",
		Short: "Print triple, type and property counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "triples\t%d\n", g.Len())
			writeRows(tw, g, "type", g.TypeCounts())
			writeRows(tw, g, "property", g.PropertyCounts())
			return tw.Flush()
		},
	}
}

func newQueryCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "query [inputs...]",
		Short: "Run one of the supported aggregate queries",
		Long: `Run an aggregate query. Supported shapes:

  SELECT (COUNT(*) AS ?n) WHERE { ?s ?p ?o }
  SELECT ?type (COUNT(?instance) AS ?n) WHERE { ?instance a ?type } GROUP BY ?type
  SELECT ?property (COUNT(?property) AS ?n) WHERE { ?s a ?t ; ?property ?o } GROUP BY ?property`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("--q is required")
			}
			g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			res, err := g.Query(text)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if res.Group == "" {
				for _, row := range res.Rows {
					fmt.Fprintf(tw, "n\t%d\n", row.N)
				}
			} else {
				writeRows(tw, g, res.Group, res.Rows)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&text, "q", "", "query text")
	return cmd
}

func writeRows(w io.Writer, g *rdf.Graph, group string, rows []rdf.QueryRow) {
	for _, row := range rows {
		key := row.Key.String()
		if iri, ok := row.Key.(rdf.IRI); ok {
			key = g.QName(iri)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", group, key, row.N)
	}
}

// decodeTypes are the record types the decode command can produce, keyed by
// TypeDef.Name.
var decodeTypes = []*mapping.TypeDef{
	foaf.AgentType,
	foaf.PersonType,
	foaf.OrganizationType,
	foaf.GroupType,
	foaf.DocumentType,
	foaf.OnlineAccountType,
	dcterms.AgentType,
	dcterms.BibliographicResourceType,
	skos.ConceptType,
	skos.ConceptSchemeType,
	skos.CollectionType,
}

func lookupType(name string) (*mapping.TypeDef, error) {
	for _, def := range decodeTypes {
		if def.Name == name {
			return def, nil
		}
	}
	names := make([]string, 0, len(decodeTypes))
	for _, def := range decodeTypes {
		names = append(names, def.Name)
	}
	slices.Sort(names)
	return nil, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(names, ", "))
}

// resolveSubject accepts "_:label", a prefixed name bound in g, or an IRI.
func resolveSubject(g *rdf.Graph, text string) rdf.Term {
	text = strings.Trim(strings.TrimSpace(text), "<>")
	if id, ok := strings.CutPrefix(text, "_:"); ok {
		return rdf.BlankNode{ID: id}
	}
	if !strings.Contains(text, "://") {
		if iri, err := g.Expand(text); err == nil {
			return iri
		}
	}
	return rdf.IRI{Value: text}
}

func newDecodeCmd(a *app) *cobra.Command {
	var typeName, subjectText string
	cmd := &cobra.Command{
		Use:   "decode [inputs...]",
		Short: "Decode one record and print it as YAML",
		Long: `Decode one record of the given type. Without --subject the single
resource of that type is used; several candidates are an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookupType(typeName)
			if err != nil {
				return err
			}
			g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			var subject rdf.Term
			if subjectText != "" {
				subject = resolveSubject(g, subjectText)
			}
			rec, err := mapping.DecodeAs(g, subject, def,
				mapping.WithBase(a.cfg.Base),
				mapping.WithLogger(a.logger))
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rec); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&typeName, "type", foaf.PersonType.Name, "record type, e.g. foaf:Person, dcterms:Agent, skos:Concept")
	cmd.Flags().StringVar(&subjectText, "subject", "", "subject IRI, prefixed name or _:label")
	return cmd
}

func newFingerprintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [inputs...]",
		Short: "Print the BLAKE3 fingerprint of the graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Fingerprint())
			return err
		},
	}
}
