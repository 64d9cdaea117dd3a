package policy

import (
	"strings"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

const (
	msgPurpose  = "Choose the purpose of policy"
	msgCategory = "Choose the categories of personal data available in the resource"
	msgResource = "Indicate the URL of the resource"
	msgName     = "Choose a name for the file storing the policy"

	msgResourceInvalid = "The URL of the resource contains characters that are not allowed in a URL"
	msgNameInvalid     = "The policy name cannot contain '/', '#', '?' or characters that are not allowed in a URL"
)

// validName reports whether name can be used as a single path segment of the policy container
func validName(name string) bool {
	return graph.ValidIRI(name) && !strings.ContainsAny(name, "/#?")
}

// validate checks the fields in the order the form presents them
func validate(request core.PolicyRequest) (core.Term, core.Term, error) {
	if request.Purpose == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("purpose", msgPurpose)
	}
	if request.Category == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("category", msgCategory)
	}
	if request.Resource == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("resource", msgResource)
	}
	if request.Name == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("name", msgName)
	}
	if !graph.ValidIRI(request.Resource) {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("resource", msgResourceInvalid)
	}
	if !validName(request.Name) {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("name", msgNameInvalid)
	}

	purpose, ok := core.LookupPurpose(request.Purpose)
	if !ok {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("purpose", "Unknown purpose: "+request.Purpose)
	}
	category, ok := core.LookupDataCategory(request.Category)
	if !ok {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("category", "Unknown data category: "+request.Category)
	}

	return category, purpose, nil
}

// buildDocument creates the ODRL offer stored at location.
//
//	#policy1           a odrl:Offer, odrl:profile oac:, odrl:permission #permission1
//	#permission1       odrl:target, dpv:hasPersonalData, odrl:action oac:Read, odrl:assigner, odrl:constraint #purposeConstraint
//	#purposeConstraint oac:Purpose odrl:isA dga:<purpose>
func buildDocument(location, assigner, resource string, category, purpose core.Term) *graph.Graph {
	doc := graph.New(location)

	permission := doc.NewThing("permission1")
	constraint := doc.NewThing("purposeConstraint")

	doc.SetThing(doc.NewThing("policy1").
		AddURL(core.RDFType, core.ODRLOffer).
		AddURL(core.ODRLProfile, core.OAC).
		AddURL(core.ODRLPermission, permission.IRI()))

	doc.SetThing(permission.
		AddURL(core.ODRLTarget, resource).
		AddURL(core.DPVHasPersonalData, category.IRI).
		AddURL(core.ODRLAction, core.OACRead).
		AddURL(core.ODRLAssigner, assigner).
		AddURL(core.ODRLConstraint, constraint.IRI()))

	doc.SetThing(constraint.
		AddURL(core.ODRLLeftOperand, core.OACPurpose).
		AddURL(core.ODRLOperator, core.ODRLIsA).
		AddURL(core.ODRLRightOperand, purpose.IRI))

	return doc
}
