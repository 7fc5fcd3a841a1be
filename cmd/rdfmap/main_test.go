package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfmodel/mapping"
	"github.com/geoknoesis/rdfmodel/rdf"
)

const peopleDoc = `@prefix foaf: <http://xmlns.com/foaf/0.1/> .
<http://example.org/alice> a foaf:Person .
<http://example.org/alice> foaf:name "Alice" .
<http://example.org/alice> foaf:knows <http://example.org/bob> .
<http://example.org/bob> a foaf:Person .
<http://example.org/bob> foaf:name "Bob" .
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// rows splits tabular output into whitespace-separated fields per line.
func rows(out string) [][]string {
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

func TestStats(t *testing.T) {
	out, err := run(t, peopleDoc, "stats", "--log-level", "error")
	require.NoError(t, err)
	rs := rows(out)
	assert.Contains(t, rs, []string{"triples", "5"})
	assert.Contains(t, rs, []string{"type", "foaf:Person", "2"})
	assert.Contains(t, rs, []string{"property", "foaf:name", "2"})
	assert.Contains(t, rs, []string{"property", "foaf:knows", "1"})
}

func TestQuery(t *testing.T) {
	out, err := run(t, peopleDoc, "query", "--log-level", "error", "--q", "SELECT (COUNT(*) AS ?n) WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"n", "5"}}, rows(out))

	out, err = run(t, peopleDoc, "query", "--log-level", "error",
		"--q", "SELECT ?type (COUNT(?instance) AS ?n) WHERE { ?instance a ?type } GROUP BY ?type")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"type", "foaf:Person", "2"}}, rows(out))

	_, err = run(t, peopleDoc, "query", "--log-level", "error", "--q", "SELECT ?s WHERE { ?s ?p ?o }")
	assert.ErrorIs(t, err, rdf.ErrUnsupportedQuery)

	_, err = run(t, peopleDoc, "query", "--log-level", "error")
	assert.ErrorContains(t, err, "--q is required")
}

func TestConvert(t *testing.T) {
	input := writeFile(t, "people.ttl", peopleDoc)

	out, err := run(t, "", "convert", "--log-level", "error", "--to", "xml", input)
	require.NoError(t, err)
	assert.Contains(t, out, `<foaf:name>Alice</foaf:name>`)

	target := filepath.Join(t.TempDir(), "out.ttl")
	out, err = run(t, "", "convert", "--log-level", "error", "--out", target, input)
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	g, err := rdf.ParseString(string(written), rdf.FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())

	_, err = run(t, "", "convert", "--log-level", "error", "--to", "n3", input)
	assert.ErrorIs(t, err, rdf.ErrUnsupportedFormat)
}

func TestWriteOutputReportsErrors(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.ttl")
	err := writeOutput(target, func(w io.Writer) error {
		if _, err := io.WriteString(w, "x"); err != nil {
			return err
		}
		return w.(*os.File).Close()
	})
	assert.ErrorIs(t, err, os.ErrClosed)

	boom := errors.New("boom")
	err = writeOutput(target, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestConvertMaxLineBytes(t *testing.T) {
	_, err := run(t, peopleDoc, "convert", "--log-level", "error", "--max-line-bytes", "20")
	assert.ErrorIs(t, err, rdf.ErrMalformedText)

	cfg := writeFile(t, "rdfmap.yaml", "max_line_bytes: 20\n")
	_, err = run(t, peopleDoc, "convert", "--config", cfg, "--log-level", "error")
	assert.ErrorIs(t, err, rdf.ErrMalformedText)

	out, err := run(t, peopleDoc, "convert", "--config", cfg, "--log-level", "error", "--max-line-bytes", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
}

func TestConvertUsesConfig(t *testing.T) {
	cfg := writeFile(t, "rdfmap.toml", `
output_format = "turtle"

[prefixes]
ex = "http://example.org/"
`)
	out, err := run(t, peopleDoc, "convert", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "@prefix ex: <http://example.org/> .")
}

func TestDecode(t *testing.T) {
	cfg := writeFile(t, "rdfmap.yaml", "base: http://example.org/\nlog_level: error\n")

	out, err := run(t, peopleDoc, "decode", "--config", cfg, "--type", "foaf:Person", "--subject", "http://example.org/bob")
	require.NoError(t, err)
	assert.Contains(t, out, "id: bob\n")
	assert.Contains(t, out, "- Bob\n")

	out, err = run(t, peopleDoc, "decode", "--config", cfg, "--type", "foaf:Person", "--subject", "<http://example.org/alice>")
	require.NoError(t, err)
	assert.Contains(t, out, "id: alice\n")
	assert.Contains(t, out, "- http://example.org/bob\n")

	_, err = run(t, peopleDoc, "decode", "--config", cfg, "--type", "foaf:Person")
	assert.ErrorIs(t, err, mapping.ErrAmbiguousSubject)

	_, err = run(t, peopleDoc, "decode", "--config", cfg, "--type", "skos:Concept")
	assert.ErrorIs(t, err, mapping.ErrNoSubject)

	_, err = run(t, peopleDoc, "decode", "--config", cfg, "--type", "foaf:Cat")
	assert.ErrorContains(t, err, `unknown type "foaf:Cat"`)
}

func TestFingerprint(t *testing.T) {
	first, err := run(t, peopleDoc, "fingerprint", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(peopleDoc), "\n")
	reordered := strings.Join(append([]string{lines[0]}, reverse(lines[1:])...), "\n") + "\n"
	second, err := run(t, reordered, "fingerprint", "--log-level", "error")
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(first), 64)
	assert.Equal(t, first, second)
}

func TestResolveSubject(t *testing.T) {
	g := rdf.NewGraph()
	g.Bind("ex", "http://example.org/")
	assert.Equal(t, rdf.IRI{Value: "http://example.org/a"}, resolveSubject(g, "ex:a"))
	assert.Equal(t, rdf.IRI{Value: "urn:x:1"}, resolveSubject(g, "urn:x:1"))
	assert.Equal(t, rdf.IRI{Value: "http://example.org/b"}, resolveSubject(g, "<http://example.org/b>"))
	assert.Equal(t, rdf.BlankNode{ID: "n1"}, resolveSubject(g, "_:n1"))
}

func reverse(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
