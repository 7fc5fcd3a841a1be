// Package source resolves CLI input arguments into a graph: glob patterns are
// expanded, compressed files are decompressed, and "-" reads standard input.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// Stdin is the argument naming standard input.
const Stdin = "-"

// ErrNoInput is returned when a pattern matches no file.
var ErrNoInput = errors.New("source: no input matched")

// Expand resolves each argument to file names. Arguments containing glob
// metacharacters ("**" included) are expanded and sorted; other arguments are
// kept as given. Duplicates are dropped, first occurrence wins.
func Expand(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, arg := range args {
		if arg == Stdin || !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoInput, arg)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

// Open opens one input, decompressing ".gz" and ".zst" files. "-" reads from
// stdin, which is not closed.
func Open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", name, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd %s: %w", name, err)
		}
		rc := dec.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Loader parses inputs into a single graph.
type Loader struct {
	Stdin  io.Reader
	Logger zerolog.Logger
	Codec  []rdf.Option
}

// Load expands args and parses every input in line notation into one graph.
// With no arguments standard input is read.
func (l Loader) Load(args []string) (*rdf.Graph, error) {
	if len(args) == 0 {
		args = []string{Stdin}
	}
	names, err := Expand(args)
	if err != nil {
		return nil, err
	}

	g := rdf.NewGraph()
	for _, name := range names {
		before := g.Len()
		if err := l.loadOne(g, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		l.Logger.Debug().Str("input", name).Int("triples", g.Len()-before).Msg("parsed input")
	}
	return g, nil
}

func (l Loader) loadOne(g *rdf.Graph, name string) error {
	stdin := l.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	rc, err := Open(name, stdin)
	if err != nil {
		return err
	}
	defer rc.Close()
	return rdf.Parse(rc, g, rdf.FormatTurtle, l.Codec...)
}
