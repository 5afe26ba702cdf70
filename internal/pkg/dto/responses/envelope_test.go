package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_PageInfo(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected PageInfo
	}{
		{name: "Top Level", body: `{"data":[],"total":40,"totalPages":4}`, expected: PageInfo{Total: 40, TotalPages: 4}},
		{name: "Pagination Object", body: `{"data":[],"pagination":{"total":12,"totalPages":2}}`, expected: PageInfo{Total: 12, TotalPages: 2}},
		{name: "Meta Last Page", body: `{"data":[],"meta":{"total":7,"last_page":1}}`, expected: PageInfo{Total: 7, TotalPages: 1}},
		{name: "Not Reported", body: `{"data":[]}`, expected: PageInfo{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			envelope := &Envelope{StatusCode: 200, Body: []byte(tc.body)}
			assert.Equal(t, tc.expected, envelope.PageInfo())
		})
	}

	var missing *Envelope
	assert.Equal(t, PageInfo{}, missing.PageInfo())
}
