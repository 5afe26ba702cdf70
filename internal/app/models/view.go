package models

// CachedView identifies one rendered read response: the dashboard route it
// backs plus everything that makes two renders of that route differ.
type CachedView struct {
	Route   string
	Session SessionContext
	Query   string
}

// ViewLookup is the outcome of a view cache lookup. Generation identifies the
// invalidation state seen before rendering and must be handed back to Store;
// it is empty when that state could not be read.
type ViewLookup struct {
	Body       []byte
	Hit        bool
	Generation string
}
