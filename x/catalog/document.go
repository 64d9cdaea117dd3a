package catalog

import (
	"fmt"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

// datasetID names the catalog node advertising the policy at policyURL
func datasetID(policyURL string) string {
	return "dataset-" + core.FileName(policyURL)
}

func newDataset(doc *graph.Graph, id, policyURL, publisher, location string, category, purpose core.Term) *graph.Thing {
	return doc.NewThing(id).
		AddURL(core.RDFType, core.DCATDataset).
		AddURL(core.ODRLHasPolicy, policyURL).
		AddURL(core.DCTermsPublisher, publisher).
		AddURL(core.DPVHasLocation, location).
		AddURL(core.DPVHasPersonalData, category.IRI).
		AddURL(core.DPVHasPurpose, purpose.IRI).
		AddString(core.DCTermsDescription, fmt.Sprintf("Dataset of %s to be used to %s", category.Value, purpose.Value))
}

// addDataset inserts a dataset node and links it from the catalog root
func addDataset(doc *graph.Graph, dataset *graph.Thing) error {
	if doc.HasThing(dataset.IRI()) {
		return core.NewErrorAlreadyExistsWithMessage(
			fmt.Sprintf("%s is already published on the catalog", core.Fragment(dataset.IRI())),
		)
	}

	root := doc.Thing(doc.Base())
	if root == nil {
		root = graph.NewThing(doc.Base()).AddURL(core.RDFType, core.DCATCatalog)
	}
	root.AddURL(core.DCATDatasetLink, dataset.IRI())

	doc.SetThing(root)
	doc.SetThing(dataset)

	return nil
}

func toEntry(thing *graph.Thing) core.CatalogEntry {
	return core.CatalogEntry{
		ID:          core.Fragment(thing.IRI()),
		IRI:         thing.IRI(),
		Policy:      thing.GetURL(core.ODRLHasPolicy),
		Publisher:   thing.GetURL(core.DCTermsPublisher),
		Location:    thing.GetURL(core.DPVHasLocation),
		Category:    thing.GetURL(core.DPVHasPersonalData),
		Purpose:     thing.GetURL(core.DPVHasPurpose),
		Description: thing.GetString(core.DCTermsDescription),
	}
}

// summarize flattens every fragment node of the catalog.
// Nodes missing an attribute get an empty tag.
func summarize(doc *graph.Graph) []core.DatasetSummary {
	summaries := []core.DatasetSummary{}
	for _, thing := range doc.Things() {
		if !core.HasFragment(thing.IRI()) {
			continue
		}
		summaries = append(summaries, core.DatasetSummary{
			DataType:   core.Fragment(thing.GetURL(core.DPVHasPersonalData)),
			Purpose:    core.Fragment(thing.GetURL(core.DPVHasPurpose)),
			Identifier: core.Fragment(thing.IRI()),
		})
	}
	return summaries
}
