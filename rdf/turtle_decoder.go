package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const turtleFormatName = "turtle"

// turtleDecoder reads the line notation: one prefix declaration or one
// "subject predicate object ." statement per line. Abbreviations such as ";",
// "," and multi-line statements are not part of the notation.
type turtleDecoder struct {
	reader *bufio.Reader
	graph  *Graph
	opts   Options
	line   int
}

func newTurtleDecoder(r io.Reader, g *Graph, opts Options) *turtleDecoder {
	return &turtleDecoder{reader: bufio.NewReader(r), graph: g, opts: opts}
}

func (d *turtleDecoder) decode() error {
	for {
		raw, err := d.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		d.line++
		if err := d.decodeLine(raw); err != nil {
			return err
		}
	}
}

func (d *turtleDecoder) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			err = nil
		} else {
			return "", err
		}
	}
	if d.opts.MaxLineBytes > 0 && len(line) > d.opts.MaxLineBytes {
		return "", wrapParseError(turtleFormatName, "", d.line+1, 0,
			fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedText, d.opts.MaxLineBytes))
	}
	return line, nil
}

func (d *turtleDecoder) decodeLine(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if strings.HasPrefix(line, "@prefix") {
		prefix, ns, err := parsePrefixDecl(line)
		if err != nil {
			return wrapParseError(turtleFormatName, line, d.line, 0, err)
		}
		d.graph.Bind(prefix, ns)
		return nil
	}
	if !strings.HasSuffix(line, ".") {
		return wrapParseError(turtleFormatName, line, d.line, len(line),
			fmt.Errorf("%w: expected '.' at end of statement", ErrMalformedText))
	}
	body := strings.TrimSpace(line[:len(line)-1])

	tokens, err := splitStatement(body)
	if err != nil {
		return wrapParseError(turtleFormatName, line, d.line, 0, err)
	}
	if len(tokens) < 3 {
		return wrapParseError(turtleFormatName, line, d.line, 0,
			fmt.Errorf("%w: expected subject, predicate and object, found %d term(s)", ErrMalformedText, len(tokens)))
	}

	subject, err := d.resolveTerm(tokens[0].text)
	if err != nil {
		return wrapParseError(turtleFormatName, line, d.line, tokens[0].col+1, err)
	}
	predTerm, err := d.resolveTerm(tokens[1].text)
	if err != nil {
		return wrapParseError(turtleFormatName, line, d.line, tokens[1].col+1, err)
	}
	predicate, ok := predTerm.(IRI)
	if !ok {
		return wrapParseError(turtleFormatName, line, d.line, tokens[1].col+1,
			fmt.Errorf("%w: predicate must be an IRI", ErrMalformedText))
	}

	parts := make([]string, 0, len(tokens)-2)
	for _, tok := range tokens[2:] {
		parts = append(parts, tok.text)
	}
	object, err := d.parseObject(strings.Join(parts, " "))
	if err != nil {
		return wrapParseError(turtleFormatName, line, d.line, tokens[2].col+1, err)
	}

	if err := d.graph.Add(Triple{S: subject, P: predicate, O: object}); err != nil {
		return wrapParseError(turtleFormatName, line, d.line, 0, err)
	}
	return nil
}

func parsePrefixDecl(line string) (string, string, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "@prefix"))
	prefix, uriPart, ok := strings.Cut(rest, ":")
	if !ok {
		return "", "", fmt.Errorf("%w: invalid prefix declaration", ErrMalformedText)
	}
	uri := strings.TrimSpace(uriPart)
	uri = strings.TrimSpace(strings.TrimSuffix(uri, "."))
	if len(uri) < 2 || uri[0] != '<' || uri[len(uri)-1] != '>' {
		return "", "", fmt.Errorf("%w: invalid prefix declaration", ErrMalformedText)
	}
	return strings.TrimSpace(prefix), uri[1 : len(uri)-1], nil
}

type statementToken struct {
	text string
	col  int // 0-based byte offset within the statement
}

// splitStatement splits on unquoted spaces and tabs. A double-quoted span,
// which may contain escaped quotes and whitespace, stays inside one token.
func splitStatement(body string) ([]statementToken, error) {
	var tokens []statementToken
	start := -1
	inQuote, escaped := false, false
	quoteStart := 0
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if inQuote {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inQuote = false
			}
			continue
		}
		switch ch {
		case '"':
			if start < 0 {
				start = i
			}
			inQuote = true
			quoteStart = i
		case ' ', '\t':
			if start >= 0 {
				tokens = append(tokens, statementToken{text: body[start:i], col: start})
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if inQuote {
		return nil, &ParseError{Column: quoteStart + 1, Err: fmt.Errorf("%w: unterminated string literal", ErrMalformedText)}
	}
	if start >= 0 {
		tokens = append(tokens, statementToken{text: body[start:], col: start})
	}
	return tokens, nil
}

func (d *turtleDecoder) resolveTerm(token string) (Term, error) {
	switch {
	case strings.HasPrefix(token, "<"):
		if len(token) < 2 || !strings.HasSuffix(token, ">") {
			return nil, fmt.Errorf("%w: unterminated IRI %q", ErrMalformedText, token)
		}
		value := token[1 : len(token)-1]
		if value == "" {
			return nil, fmt.Errorf("%w: empty IRI", ErrMalformedText)
		}
		return IRI{Value: value}, nil
	case token == "a":
		return RDFType, nil
	case strings.HasPrefix(token, "_:"):
		if len(token) == 2 {
			return nil, fmt.Errorf("%w: blank node id missing", ErrMalformedText)
		}
		return BlankNode{ID: token[2:]}, nil
	case strings.HasPrefix(token, `"`):
		return nil, fmt.Errorf("%w: literal not allowed here", ErrMalformedText)
	case strings.Contains(token, ":"):
		iri, err := d.graph.Expand(token)
		if err != nil {
			return nil, err
		}
		return iri, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", ErrMalformedText, token)
	}
}

func (d *turtleDecoder) parseObject(token string) (Term, error) {
	if strings.HasPrefix(token, `"`) {
		return d.parseLiteral(token)
	}
	return d.resolveTerm(token)
}

func (d *turtleDecoder) parseLiteral(token string) (Literal, error) {
	end := 1
	escaped := false
	for end < len(token) {
		ch := token[end]
		if escaped {
			escaped = false
		} else if ch == '\\' {
			escaped = true
		} else if ch == '"' {
			break
		}
		end++
	}
	if end >= len(token) {
		return Literal{}, fmt.Errorf("%w: unterminated string literal", ErrMalformedText)
	}
	lexical, err := unescapeLiteral(token[1:end])
	if err != nil {
		return Literal{}, err
	}
	rest := strings.TrimSpace(token[end+1:])
	switch {
	case rest == "":
		return Literal{Lexical: lexical}, nil
	case strings.HasPrefix(rest, "@"):
		lang := rest[1:]
		if lang == "" {
			return Literal{}, fmt.Errorf("%w: empty language tag", ErrMalformedText)
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	case strings.HasPrefix(rest, "^^"):
		dt, err := d.resolveTerm(strings.TrimSpace(rest[2:]))
		if err != nil {
			return Literal{}, err
		}
		iri, ok := dt.(IRI)
		if !ok {
			return Literal{}, fmt.Errorf("%w: datatype must be an IRI", ErrMalformedText)
		}
		return Literal{Lexical: lexical, Datatype: iri}, nil
	default:
		return Literal{}, fmt.Errorf("%w: unexpected %q after literal", ErrMalformedText, rest)
	}
}

func unescapeLiteral(value string) (string, error) {
	if !strings.Contains(value, `\`) {
		return value, nil
	}
	var builder strings.Builder
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch != '\\' {
			builder.WriteByte(ch)
			continue
		}
		if i+1 >= len(value) {
			return "", fmt.Errorf("%w: unterminated escape", ErrMalformedText)
		}
		i++
		switch next := value[i]; next {
		case 'n':
			builder.WriteByte('\n')
		case 't':
			builder.WriteByte('\t')
		case 'r':
			builder.WriteByte('\r')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'u', 'U':
			width := 4
			if next == 'U' {
				width = 8
			}
			if i+1+width > len(value) {
				return "", fmt.Errorf("%w: short unicode escape", ErrMalformedText)
			}
			code, err := strconv.ParseUint(value[i+1:i+1+width], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", fmt.Errorf("%w: invalid unicode escape", ErrMalformedText)
			}
			builder.WriteRune(rune(code))
			i += width
		default:
			builder.WriteByte(next)
		}
	}
	return builder.String(), nil
}
