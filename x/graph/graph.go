// Package graph is an in-memory model of the RDF documents stored in Solid pods
package graph

import (
	"strconv"
	"time"
)

type Kind int

const (
	KindIRI Kind = iota
	KindBlank
	KindLiteral
)

const xsd = "http://www.w3.org/2001/XMLSchema#"

// Term is an object position value
type Term struct {
	Kind     Kind
	Value    string
	Datatype string
	Lang     string
}

func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: rdfLangString, Lang: lang}
}

type Statement struct {
	Predicate string
	Object    Term
}

// Thing is the set of statements sharing one subject
type Thing struct {
	iri        string
	statements []Statement
}

func NewThing(iri string) *Thing {
	return &Thing{iri: iri}
}

func (t *Thing) IRI() string {
	return t.iri
}

func (t *Thing) Statements() []Statement {
	return t.statements
}

func (t *Thing) add(predicate string, object Term) *Thing {
	t.statements = append(t.statements, Statement{predicate, object})
	return t
}

func (t *Thing) AddURL(predicate, url string) *Thing {
	return t.add(predicate, IRI(url))
}

func (t *Thing) AddString(predicate, value string) *Thing {
	return t.add(predicate, Literal(value))
}

func (t *Thing) AddInteger(predicate string, value int64) *Thing {
	return t.add(predicate, TypedLiteral(strconv.FormatInt(value, 10), xsd+"integer"))
}

func (t *Thing) AddDateTime(predicate string, value time.Time) *Thing {
	return t.add(predicate, TypedLiteral(value.UTC().Format(time.RFC3339), xsd+"dateTime"))
}

// GetURL returns the first IRI value of predicate, or ""
func (t *Thing) GetURL(predicate string) string {
	for _, s := range t.statements {
		if s.Predicate == predicate && s.Object.Kind == KindIRI {
			return s.Object.Value
		}
	}
	return ""
}

func (t *Thing) GetURLAll(predicate string) []string {
	urls := []string{}
	for _, s := range t.statements {
		if s.Predicate == predicate && s.Object.Kind == KindIRI {
			urls = append(urls, s.Object.Value)
		}
	}
	return urls
}

// GetString returns the first literal value of predicate, or ""
func (t *Thing) GetString(predicate string) string {
	for _, s := range t.statements {
		if s.Predicate == predicate && s.Object.Kind == KindLiteral {
			return s.Object.Value
		}
	}
	return ""
}

// Graph is an RDF document located at Base
type Graph struct {
	base   string
	things []*Thing
}

func New(base string) *Graph {
	return &Graph{base: base}
}

func (g *Graph) Base() string {
	return g.base
}

// NewThing creates a thing named by a fragment of this document
func (g *Graph) NewThing(name string) *Thing {
	return NewThing(g.base + "#" + name)
}

// Thing returns the thing with the given IRI, or nil
func (g *Graph) Thing(iri string) *Thing {
	for _, t := range g.things {
		if t.iri == iri {
			return t
		}
	}
	return nil
}

func (g *Graph) HasThing(iri string) bool {
	return g.Thing(iri) != nil
}

// Things returns every subject of the document in first-seen order
func (g *Graph) Things() []*Thing {
	return g.things
}

// SetThing replaces every statement about the thing's subject
func (g *Graph) SetThing(thing *Thing) {
	for i, t := range g.things {
		if t.iri == thing.iri {
			g.things[i] = thing
			return
		}
	}
	g.things = append(g.things, thing)
}

func (g *Graph) RemoveThing(iri string) {
	for i, t := range g.things {
		if t.iri == iri {
			g.things = append(g.things[:i], g.things[i+1:]...)
			return
		}
	}
}

// Len returns the number of triples
func (g *Graph) Len() int {
	n := 0
	for _, t := range g.things {
		n += len(t.statements)
	}
	return n
}

func (g *Graph) add(subject, predicate string, object Term) {
	thing := g.Thing(subject)
	if thing == nil {
		thing = NewThing(subject)
		g.things = append(g.things, thing)
	}
	thing.add(predicate, object)
}
