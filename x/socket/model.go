package socket

import (
	"github.com/soda-altruism/portal/core"
)

// Filter narrows the catalog feed. Empty fields match every event.
type Filter struct {
	Category string `json:"category"`
	Purpose  string `json:"purpose"`
}

// Match compares against the vocabulary values of the published entry
func (f Filter) Match(event core.CatalogEvent) bool {
	if f.Category != "" && core.Fragment(event.Entry.Category) != f.Category {
		return false
	}
	if f.Purpose != "" && core.Fragment(event.Entry.Purpose) != f.Purpose {
		return false
	}
	return true
}
