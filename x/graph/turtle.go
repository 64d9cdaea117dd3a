package graph

import (
	"bytes"
	"fmt"
	"io"
	neturl "net/url"
	"strings"

	"github.com/knakk/rdf"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Parse decodes a Turtle document located at base. Relative IRIs resolve against base.
func Parse(base string, r io.Reader) (*Graph, error) {
	baseURL, err := neturl.Parse(base)
	if err != nil {
		return nil, errors.Wrap(err, "invalid document url")
	}

	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode turtle")
	}

	g := New(base)
	for _, triple := range triples {
		var subject string
		switch s := triple.Subj.(type) {
		case rdf.IRI:
			subject = resolve(baseURL, s.String())
		case rdf.Blank:
			subject = "_:" + blankID(s.String())
		default:
			continue
		}

		predicate := resolve(baseURL, triple.Pred.String())

		var object Term
		switch o := triple.Obj.(type) {
		case rdf.IRI:
			object = IRI(resolve(baseURL, o.String()))
		case rdf.Blank:
			object = Term{Kind: KindBlank, Value: blankID(o.String())}
		case rdf.Literal:
			object = literal(o)
		default:
			continue
		}

		g.add(subject, predicate, object)
	}

	return g, nil
}

// resolve applies RFC 3986 reference resolution. The decoder leaves relative IRIs as written.
func resolve(base *neturl.URL, iri string) string {
	ref, err := neturl.Parse(iri)
	if err != nil || ref.IsAbs() {
		return iri
	}
	return base.ResolveReference(ref).String()
}

func literal(l rdf.Literal) Term {
	datatype := l.DataType.String()
	switch {
	case l.Lang() != "":
		return LangLiteral(l.String(), l.Lang())
	case datatype == xsd+"string":
		return Literal(l.String())
	default:
		return TypedLiteral(l.String(), datatype)
	}
}

func ParseString(base, document string) (*Graph, error) {
	return Parse(base, strings.NewReader(document))
}

func blankID(id string) string {
	return strings.TrimPrefix(id, "_:")
}

// Prefixes maps a turtle prefix to its namespace
type Prefixes map[string]string

// InvalidIRIError is returned when an IRI holds characters Turtle cannot carry
type InvalidIRIError struct {
	IRI string
}

func (e InvalidIRIError) Error() string {
	return fmt.Sprintf("invalid IRI %q", e.IRI)
}

// ValidIRI reports whether value can be written as an IRI reference
func ValidIRI(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r <= 0x20 || strings.ContainsRune(invalidIRIRunes, r) {
			return false
		}
	}
	return true
}

const invalidIRIRunes = "<>\"{}|^`\\"

type writer struct {
	base     string
	prefixes Prefixes
	names    []string
	err      error
}

func (w *writer) iri(value string) string {
	if !ValidIRI(value) {
		if w.err == nil {
			w.err = InvalidIRIError{IRI: value}
		}
		return "<>"
	}
	if value == w.base {
		return "<>"
	}
	if strings.HasPrefix(value, w.base+"#") {
		return "<" + value[len(w.base):] + ">"
	}
	for _, name := range w.names {
		ns := w.prefixes[name]
		if strings.HasPrefix(value, ns) && isLocalName(value[len(ns):]) {
			return name + ":" + value[len(ns):]
		}
	}
	return "<" + value + ">"
}

func (w *writer) subject(value string) string {
	if strings.HasPrefix(value, "_:") {
		return value
	}
	return w.iri(value)
}

func (w *writer) term(t Term) string {
	switch t.Kind {
	case KindIRI:
		return w.iri(t.Value)
	case KindBlank:
		return "_:" + t.Value
	default:
		lit := `"` + escapeLiteral(t.Value) + `"`
		switch {
		case t.Lang != "":
			lit += "@" + t.Lang
		case t.Datatype != "" && t.Datatype != xsd+"string":
			lit += "^^" + w.iri(t.Datatype)
		}
		return lit
	}
}

// WriteTurtle encodes the graph. Subjects inside the document are written relative to it.
// Nothing is written when an IRI of the graph is invalid.
func (g *Graph) WriteTurtle(out io.Writer, prefixes Prefixes) error {
	names := maps.Keys(prefixes)
	slices.Sort(names)
	w := &writer{base: g.base, prefixes: prefixes, names: names}

	var buf bytes.Buffer
	for _, name := range names {
		fmt.Fprintf(&buf, "@prefix %s: <%s> .\n", name, prefixes[name])
	}
	if len(names) > 0 {
		buf.WriteString("\n")
	}

	for _, thing := range g.things {
		if len(thing.statements) == 0 {
			continue
		}
		buf.WriteString(w.subject(thing.iri))
		for i, s := range thing.statements {
			predicate := w.iri(s.Predicate)
			if s.Predicate == rdfType {
				predicate = "a"
			}
			fmt.Fprintf(&buf, "\n    %s %s", predicate, w.term(s.Object))
			if i < len(thing.statements)-1 {
				buf.WriteString(" ;")
			}
		}
		buf.WriteString(" .\n\n")
	}

	if w.err != nil {
		return w.err
	}

	_, err := out.Write(buf.Bytes())
	return err
}

// Turtle returns the encoded document
func (g *Graph) Turtle(prefixes Prefixes) (string, error) {
	var buf bytes.Buffer
	err := g.WriteTurtle(&buf, prefixes)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const (
	rdfType       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

func isLocalName(s string) bool {
	if s == "" {
		return true
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
