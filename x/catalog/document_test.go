package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

const catalogURL = "https://broker.example/catalogs/catalog1"

func TestAddDataset(t *testing.T) {
	category, _ := core.LookupDataCategory("Health")
	purpose, _ := core.LookupPurpose("ScientificResearch")

	doc := graph.New(catalogURL)
	dataset := newDataset(doc, datasetID("https://alice.example/altruism/steps-policy"),
		"https://alice.example/altruism/steps-policy",
		"https://alice.example/profile/card#me",
		"https://alice.example/data/steps.ttl",
		category, purpose)

	assert.Equal(t, catalogURL+"#dataset-steps-policy", dataset.IRI())
	assert.NoError(t, addDataset(doc, dataset))

	root := doc.Thing(catalogURL)
	if assert.NotNil(t, root) {
		assert.Equal(t, core.DCATCatalog, root.GetURL(core.RDFType))
		assert.Equal(t, []string{dataset.IRI()}, root.GetURLAll(core.DCATDatasetLink))
	}

	entry := toEntry(doc.Thing(dataset.IRI()))
	assert.Equal(t, "dataset-steps-policy", entry.ID)
	assert.Equal(t, "https://alice.example/altruism/steps-policy", entry.Policy)
	assert.Equal(t, "https://alice.example/profile/card#me", entry.Publisher)
	assert.Equal(t, "https://alice.example/data/steps.ttl", entry.Location)
	assert.Equal(t, core.DPVPD+"Health", entry.Category)
	assert.Equal(t, core.DGA+"ScientificResearch", entry.Purpose)
	assert.Equal(t, "Dataset of Health to be used to ScientificResearch", entry.Description)

	err := addDataset(doc, dataset)
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})
	assert.Len(t, doc.Thing(catalogURL).GetURLAll(core.DCATDatasetLink), 1)
}

func TestSummarize(t *testing.T) {
	document := `@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dpv: <https://w3id.org/dpv#> .

<> a dcat:Catalog ;
    dcat:dataset <#dataset-a>, <#dataset-b> .

<#dataset-a> a dcat:Dataset ;
    dpv:hasPersonalData <https://w3id.org/dpv/dpv-pd#Age> ;
    dpv:hasPurpose <https://w3id.org/dgaterms#ImproveHealthcare> .

<#dataset-b> a dcat:Dataset ;
    dpv:hasPurpose <https://w3id.org/dgaterms#CombatClimateChange> .
`
	doc, err := graph.ParseString(catalogURL, document)
	if !assert.NoError(t, err) {
		return
	}

	summaries := summarize(doc)
	assert.ElementsMatch(t, []core.DatasetSummary{
		{DataType: "Age", Purpose: "ImproveHealthcare", Identifier: "dataset-a"},
		{DataType: "", Purpose: "CombatClimateChange", Identifier: "dataset-b"},
	}, summaries)

	assert.Empty(t, summarize(graph.New(catalogURL)))
}
