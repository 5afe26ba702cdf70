package responses

import (
	"dashboard-service/internal/app/models"

	"github.com/goccy/go-json"
)

// Mutation is the result of a write through the gateway: the backend payload
// and the views that became stale because of it.
type Mutation struct {
	Data       json.RawMessage        `json:"data,omitempty"`
	Invalidate models.InvalidationSet `json:"-"`
}
