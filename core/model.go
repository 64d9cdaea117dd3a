package core

import (
	"fmt"
	"net/url"
	"time"
)

// Session is the authenticated context of one portal user
type Session struct {
	ID          string    `json:"id"`
	WebID       string    `json:"webid"`
	PodRoot     string    `json:"podRoot"`
	AccessToken string    `json:"accessToken,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// IsAnonymous reports whether requests made with this session carry no credentials
func (s Session) IsAnonymous() bool {
	return s.AccessToken == ""
}

// Root returns the pod root of the session user
func (s Session) Root() string {
	if s.PodRoot != "" {
		return s.PodRoot
	}
	return PodRootFromWebID(s.WebID)
}

// RequireRoot returns the pod root, or ErrorNotFound when neither the profile nor the WebID gives an absolute one
func (s Session) RequireRoot() (string, error) {
	root := s.Root()
	u, err := url.Parse(root)
	if root == "" || err != nil || !u.IsAbs() {
		return "", NewErrorNotFoundWithMessage(fmt.Sprintf("The pod root of %s is unknown", s.WebID))
	}
	return root, nil
}

// Profile is the public part of a WebID profile document
type Profile struct {
	WebID    string   `json:"webid"`
	Name     string   `json:"name,omitempty"`
	Storages []string `json:"storages"`
	Inbox    string   `json:"inbox,omitempty"`
}

// PodRoot returns the root of the user's storage space
func (p Profile) PodRoot() string {
	if len(p.Storages) > 0 {
		return p.Storages[0]
	}
	return PodRootFromWebID(p.WebID)
}

// PolicyRequest is the user input for generating a policy
type PolicyRequest struct {
	Resource string `json:"resource"`
	Category string `json:"category"`
	Purpose  string `json:"purpose"`
	Name     string `json:"name"`
}

// Policy is a generated ODRL offer
type Policy struct {
	Location string `json:"location"`
	Target   string `json:"target"`
	Category string `json:"category"`
	Purpose  string `json:"purpose"`
	Assigner string `json:"assigner"`
	Document string `json:"document"`
}

// PublishRequest is the user input for advertising a dataset on the catalog
type PublishRequest struct {
	PolicyName string `json:"policyName"`
	Resource   string `json:"resource"`
	Category   string `json:"category"`
	Purpose    string `json:"purpose"`
}

// CatalogEntry is one dataset node of the catalog
type CatalogEntry struct {
	ID          string `json:"id"`
	IRI         string `json:"iri"`
	Policy      string `json:"policy"`
	Publisher   string `json:"publisher"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Purpose     string `json:"purpose"`
	Description string `json:"description"`
}

// DatasetSummary is the flattened view of a catalog entry used for browsing
type DatasetSummary struct {
	DataType   string `json:"dataType"`
	Purpose    string `json:"purpose"`
	Identifier string `json:"identifier"`
}

// Notification is an access request delivered to a publisher's inbox
type Notification struct {
	Location    string    `json:"location"`
	Inbox       string    `json:"inbox"`
	Target      string    `json:"target"`
	Requester   string    `json:"requester"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// CatalogEvent is broadcast when a dataset is published
type CatalogEvent struct {
	Type    string       `json:"type"`
	Entry   CatalogEntry `json:"entry"`
	Created time.Time    `json:"created"`
}
