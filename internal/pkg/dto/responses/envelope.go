package responses

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Envelope is a successful backend response, passed through unchanged.
type Envelope struct {
	StatusCode int
	Body       json.RawMessage
}

// Data returns the `data` member of the body, or the whole body when the
// backend did not wrap its payload.
func (e *Envelope) Data() json.RawMessage {
	if e == nil || len(e.Body) == 0 {
		return nil
	}
	result := gjson.GetBytes(e.Body, "data")
	if !result.Exists() {
		return e.Body
	}
	return json.RawMessage(result.Raw)
}

func (e *Envelope) Decode(v interface{}) error {
	return json.Unmarshal(e.Body, v)
}

func (e *Envelope) DecodeData(v interface{}) error {
	return json.Unmarshal(e.Data(), v)
}

// PageInfo is the pagination metadata of a list response. Zero fields were
// not reported by the backend.
type PageInfo struct {
	Total      int
	TotalPages int
}

var (
	totalPaths      = []string{"total", "totalItems", "pagination.total", "meta.total"}
	totalPagesPaths = []string{"totalPages", "pagination.totalPages", "meta.totalPages", "meta.last_page"}
)

func (e *Envelope) PageInfo() PageInfo {
	if e == nil || len(e.Body) == 0 {
		return PageInfo{}
	}
	return PageInfo{
		Total:      firstInt(e.Body, totalPaths),
		TotalPages: firstInt(e.Body, totalPagesPaths),
	}
}

func firstInt(body []byte, paths []string) int {
	for _, path := range paths {
		if result := gjson.GetBytes(body, path); result.Exists() {
			return int(result.Int())
		}
	}
	return 0
}
