package core

const (
	SessionCtxKey = "soda-session"
)

const (
	// CatalogEventChannel is the redis channel catalog publications are broadcast on
	CatalogEventChannel = "soda:catalog"
)

// Precondition selects the conditional header sent with a document write
type Precondition struct {
	IfMatch     string
	IfNoneMatch string
}

// CreateOnly fails the write when the document already exists
func CreateOnly() Precondition {
	return Precondition{IfNoneMatch: "*"}
}

// MatchVersion fails the write when the document changed since etag was read
func MatchVersion(etag string) Precondition {
	return Precondition{IfMatch: etag}
}
