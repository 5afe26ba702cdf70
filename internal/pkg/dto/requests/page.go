package requests

import "dashboard-service/internal/pkg/constvars"

// PageRequest carries list pagination plus the free-text filter typed into
// a dashboard search box and any status facets selected next to it.
type PageRequest struct {
	Page     int
	Limit    int
	Filter   string
	Statuses []string
}

// Normalize fills unset or invalid values with defaults. A non-positive
// defaultLimit falls back to constvars.DefaultItemsPerPage.
func (p PageRequest) Normalize(defaultLimit int) PageRequest {
	if defaultLimit < 1 {
		defaultLimit = constvars.DefaultItemsPerPage
	}
	if p.Page < 1 {
		p.Page = constvars.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}
