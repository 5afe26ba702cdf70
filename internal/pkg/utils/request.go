package utils

import (
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// BuildPageRequest reads page, limit, filter and status from the query
// string. Status may repeat or be comma separated. Missing numbers stay zero
// and are defaulted by PageRequest.Normalize.
func BuildPageRequest(r *http.Request) requests.PageRequest {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get(constvars.QueryParamPage))
	limit, _ := strconv.Atoi(query.Get(constvars.QueryParamLimit))

	var statuses []string
	for _, raw := range query[constvars.QueryParamStatus] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				statuses = append(statuses, strings.ToUpper(status))
			}
		}
	}

	return requests.PageRequest{
		Page:     page,
		Limit:    limit,
		Filter:   strings.TrimSpace(query.Get(constvars.QueryParamFilter)),
		Statuses: statuses,
	}
}

func ParseJSONBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// BuildMultipartPayload copies an inbound multipart form so it can be
// forwarded to the backend unchanged.
func BuildMultipartPayload(r *http.Request, maxMemory int64) (*requests.MultipartPayload, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, err
	}

	payload := new(requests.MultipartPayload)
	for name, values := range r.MultipartForm.Value {
		for _, value := range values {
			payload.AddField(name, value)
		}
	}

	for fieldName, fileHeaders := range r.MultipartForm.File {
		for _, fileHeader := range fileHeaders {
			file, err := fileHeader.Open()
			if err != nil {
				return nil, err
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, err
			}
			payload.AddFile(fieldName, fileHeader.Filename, fileHeader.Header.Get(constvars.HeaderContentType), content)
		}
	}

	return payload, nil
}
