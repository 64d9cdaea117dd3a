package core

const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	ODRL    = "http://www.w3.org/ns/odrl/2/"
	DCAT    = "http://www.w3.org/ns/dcat#"
	DCTERMS = "http://purl.org/dc/terms/"
	FOAF    = "http://xmlns.com/foaf/0.1/"
	LDP     = "http://www.w3.org/ns/ldp#"
	PIM     = "http://www.w3.org/ns/pim/space#"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
	DPV     = "https://w3id.org/dpv#"
	DPVPD   = "https://w3id.org/dpv/dpv-pd#"
	OAC     = "https://w3id.org/oac#"
	DGA     = "https://w3id.org/dgaterms#"
)

const (
	RDFType = RDF + "type"

	ODRLOffer        = ODRL + "Offer"
	ODRLProfile      = ODRL + "profile"
	ODRLPermission   = ODRL + "permission"
	ODRLTarget       = ODRL + "target"
	ODRLAction       = ODRL + "action"
	ODRLAssigner     = ODRL + "assigner"
	ODRLConstraint   = ODRL + "constraint"
	ODRLLeftOperand  = ODRL + "leftOperand"
	ODRLOperator     = ODRL + "operator"
	ODRLRightOperand = ODRL + "rightOperand"
	ODRLIsA          = ODRL + "isA"
	ODRLHasPolicy    = ODRL + "hasPolicy"

	DCATCatalog     = DCAT + "Catalog"
	DCATDataset     = DCAT + "Dataset"
	DCATDatasetLink = DCAT + "dataset"

	DCTermsPublisher   = DCTERMS + "publisher"
	DCTermsDescription = DCTERMS + "description"
	DCTermsCreator     = DCTERMS + "creator"
	DCTermsCreated     = DCTERMS + "created"
	DCTermsReferences  = DCTERMS + "references"

	FOAFName = FOAF + "name"

	LDPInbox    = LDP + "inbox"
	LDPContains = LDP + "contains"

	PIMStorage = PIM + "storage"

	DPVHasPersonalData = DPV + "hasPersonalData"
	DPVHasPurpose      = DPV + "hasPurpose"
	DPVHasLocation     = DPV + "hasLocation"

	OACRead    = OAC + "Read"
	OACPurpose = OAC + "Purpose"
)

// Term is one entry of a controlled vocabulary
type Term struct {
	Value string `json:"value"`
	Label string `json:"label"`
	IRI   string `json:"iri"`
}

// DataCategories are the personal data categories a resource may contain
var DataCategories = []Term{
	{Value: "Location", Label: "Location", IRI: DPVPD + "Location"},
	{Value: "Health", Label: "Health", IRI: DPVPD + "Health"},
	{Value: "Age", Label: "Age", IRI: DPVPD + "Age"},
	{Value: "EducationQualification", Label: "Education Qualification", IRI: DPVPD + "EducationQualification"},
	{Value: "VehicleUsage", Label: "Vehicle Usage", IRI: DPVPD + "VehicleUsage"},
}

// AltruisticPurposes are the purposes data may be reused for
var AltruisticPurposes = []Term{
	{Value: "CombatClimateChange", Label: "Combat Climate Change", IRI: DGA + "CombatClimateChange"},
	{Value: "ScientificResearch", Label: "Scientific Research", IRI: DGA + "ScientificResearch"},
	{Value: "ImproveHealthcare", Label: "Improve Healthcare", IRI: DGA + "ImproveHealthcare"},
	{Value: "ImprovePublicServices", Label: "Improve Public Services", IRI: DGA + "ImprovePublicServices"},
	{Value: "ImproveTransportMobility", Label: "Improve Transport and Mobility", IRI: DGA + "ImproveTransportMobility"},
	{Value: "ProvideOfficialStatistics", Label: "Provide Official Statistics", IRI: DGA + "ProvideOfficialStatistics"},
	{Value: "PublicPolicyMaking", Label: "Public Policy Making", IRI: DGA + "PublicPolicyMaking"},
}

func lookupTerm(terms []Term, value string) (Term, bool) {
	for _, term := range terms {
		if term.Value == value {
			return term, true
		}
	}
	return Term{}, false
}

// LookupDataCategory finds a data category by its value
func LookupDataCategory(value string) (Term, bool) {
	return lookupTerm(DataCategories, value)
}

// LookupPurpose finds an altruistic purpose by its value
func LookupPurpose(value string) (Term, bool) {
	return lookupTerm(AltruisticPurposes, value)
}
