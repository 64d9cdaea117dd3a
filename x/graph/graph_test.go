package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	catalogURL = "https://broker.example/catalogs/catalog1"
	dcterms    = "http://purl.org/dc/terms/"
	dcat       = "http://www.w3.org/ns/dcat#"
)

func TestThingAccessors(t *testing.T) {
	g := New(catalogURL)
	thing := g.NewThing("dataset-policy-x").
		AddURL(rdfType, dcat+"Dataset").
		AddURL(dcterms+"publisher", "https://alice.example/profile/card#me").
		AddString(dcterms+"description", "Dataset of Health")
	g.SetThing(thing)

	assert.Equal(t, catalogURL+"#dataset-policy-x", thing.IRI())
	assert.Equal(t, 3, g.Len())

	found := g.Thing(catalogURL + "#dataset-policy-x")
	if assert.NotNil(t, found) {
		assert.Equal(t, "https://alice.example/profile/card#me", found.GetURL(dcterms+"publisher"))
		assert.Equal(t, "Dataset of Health", found.GetString(dcterms+"description"))
		assert.Equal(t, "", found.GetURL(dcterms+"description"))
		assert.Equal(t, "", found.GetString(dcterms+"missing"))
	}

	assert.Nil(t, g.Thing(catalogURL+"#other"))
}

func TestSetThingReplaces(t *testing.T) {
	g := New(catalogURL)
	g.SetThing(NewThing(catalogURL).AddURL(rdfType, dcat+"Catalog"))
	g.SetThing(NewThing(catalogURL).AddURL(rdfType, dcat+"Catalog").AddURL(dcat+"dataset", catalogURL+"#a"))

	assert.Len(t, g.Things(), 1)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{catalogURL + "#a"}, g.Thing(catalogURL).GetURLAll(dcat+"dataset"))

	g.RemoveThing(catalogURL)
	assert.Equal(t, 0, g.Len())
}

func TestTurtleRoundTrip(t *testing.T) {
	g := New(catalogURL)
	g.SetThing(NewThing(catalogURL).
		AddURL(rdfType, dcat+"Catalog").
		AddURL(dcat+"dataset", catalogURL+"#dataset-policy-x"))
	g.SetThing(g.NewThing("dataset-policy-x").
		AddURL(rdfType, dcat+"Dataset").
		AddString(dcterms+"description", "say \"hello\"\nworld"))

	document, err := g.Turtle(Prefixes{"dcat": dcat, "dcterms": dcterms})
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, document, "@prefix dcat: <http://www.w3.org/ns/dcat#> .")
	assert.Contains(t, document, "<#dataset-policy-x>")
	assert.Contains(t, document, "a dcat:Dataset")

	parsed, err := ParseString(catalogURL, document)
	if assert.NoError(t, err) {
		assert.Equal(t, g.Len(), parsed.Len())
		dataset := parsed.Thing(catalogURL + "#dataset-policy-x")
		if assert.NotNil(t, dataset) {
			assert.Equal(t, dcat+"Dataset", dataset.GetURL(rdfType))
			assert.Equal(t, "say \"hello\"\nworld", dataset.GetString(dcterms+"description"))
		}
		root := parsed.Thing(catalogURL)
		if assert.NotNil(t, root) {
			assert.Equal(t, catalogURL+"#dataset-policy-x", root.GetURL(dcat+"dataset"))
		}
	}
}

func TestParseResolvesRelativeIRIs(t *testing.T) {
	document := `@prefix ldp: <http://www.w3.org/ns/ldp#> .
<> ldp:contains <policy-a>, <policy-b> .
<#me> ldp:inbox </inbox/> .
`
	g, err := ParseString("https://alice.example/altruism/", document)
	if assert.NoError(t, err) {
		root := g.Thing("https://alice.example/altruism/")
		if assert.NotNil(t, root) {
			assert.ElementsMatch(t, []string{
				"https://alice.example/altruism/policy-a",
				"https://alice.example/altruism/policy-b",
			}, root.GetURLAll("http://www.w3.org/ns/ldp#contains"))
		}
		me := g.Thing("https://alice.example/altruism/#me")
		if assert.NotNil(t, me) {
			assert.Equal(t, "https://alice.example/inbox/", me.GetURL("http://www.w3.org/ns/ldp#inbox"))
		}
	}
}

func TestParseResolvesDotSegments(t *testing.T) {
	document := `@prefix ldp: <http://www.w3.org/ns/ldp#> .
@prefix pim: <http://www.w3.org/ns/pim/space#> .
<#me> ldp:inbox </inbox/> ;
    pim:storage <../> ;
    ldp:contains <../up/doc>, <https://other.example/x> .
`
	g, err := ParseString("https://alice.example/profile/card", document)
	if !assert.NoError(t, err) {
		return
	}
	me := g.Thing("https://alice.example/profile/card#me")
	if assert.NotNil(t, me) {
		assert.Equal(t, "https://alice.example/inbox/", me.GetURL("http://www.w3.org/ns/ldp#inbox"))
		assert.Equal(t, "https://alice.example/", me.GetURL("http://www.w3.org/ns/pim/space#storage"))
		assert.Equal(t, []string{
			"https://alice.example/up/doc",
			"https://other.example/x",
		}, me.GetURLAll("http://www.w3.org/ns/ldp#contains"))
	}
}

func TestTurtleKeepsLiteralTypes(t *testing.T) {
	document := `@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
<> dcterms:title "Catalogue"@fr ;
    dcterms:modified "2024-01-02T03:04:05Z"^^xsd:dateTime ;
    dcterms:extent 42 ;
    dcterms:description "plain" .
`
	g, err := ParseString(catalogURL, document)
	if !assert.NoError(t, err) {
		return
	}

	encoded, err := g.Turtle(Prefixes{"dcterms": dcterms, "xsd": xsd})
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, encoded, `"Catalogue"@fr`)
	assert.Contains(t, encoded, `"2024-01-02T03:04:05Z"^^xsd:dateTime`)
	assert.Contains(t, encoded, `"42"^^xsd:integer`)
	assert.Contains(t, encoded, `"plain"`)
	assert.NotContains(t, encoded, `"plain"^^`)

	again, err := ParseString(catalogURL, encoded)
	if !assert.NoError(t, err) {
		return
	}
	root := again.Thing(catalogURL)
	if assert.NotNil(t, root) {
		for _, s := range root.Statements() {
			switch s.Predicate {
			case dcterms + "title":
				assert.Equal(t, LangLiteral("Catalogue", "fr"), s.Object)
			case dcterms + "modified":
				assert.Equal(t, TypedLiteral("2024-01-02T03:04:05Z", xsd+"dateTime"), s.Object)
			case dcterms + "extent":
				assert.Equal(t, TypedLiteral("42", xsd+"integer"), s.Object)
			case dcterms + "description":
				assert.Equal(t, Literal("plain"), s.Object)
			}
		}
	}
}

func TestTurtleRejectsInvalidIRI(t *testing.T) {
	g := New(catalogURL)
	g.SetThing(g.NewThing("permission1").
		AddURL("http://www.w3.org/ns/odrl/2/target", "https://a.example/x> ; <http://www.w3.org/ns/odrl/2/assignee> <http://evil.example/mallory"))

	_, err := g.Turtle(Prefixes{})
	assert.ErrorAs(t, err, &InvalidIRIError{})

	var buf strings.Builder
	assert.Error(t, g.WriteTurtle(&buf, Prefixes{}))
	assert.Empty(t, buf.String())
}

func TestValidIRI(t *testing.T) {
	assert.True(t, ValidIRI("https://alice.example/data/steps.ttl"))
	assert.True(t, ValidIRI("https://alice.example/data/%20steps"))
	for _, value := range []string{
		"",
		"https://alice.example/a b",
		"https://alice.example/a>b",
		"https://alice.example/<a",
		`https://alice.example/"a"`,
		"https://alice.example/{a}",
		"https://alice.example/a|b",
		"https://alice.example/a^b",
		"https://alice.example/a`b",
		`https://alice.example/a\b`,
		"https://alice.example/a\nb",
	} {
		assert.False(t, ValidIRI(value), value)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseString(catalogURL, "<a> <b> .")
	assert.Error(t, err)
}
