package requests

// MultipartPayload is form data forwarded to the backend as
// multipart/form-data. Field order is kept so the backend sees fields in the
// order the dashboard submitted them.
type MultipartPayload struct {
	Fields []FormField
	Files  []FormFile
}

type FormField struct {
	Name  string
	Value string
}

type FormFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

func (p *MultipartPayload) AddField(name, value string) {
	p.Fields = append(p.Fields, FormField{Name: name, Value: value})
}

func (p *MultipartPayload) AddFile(fieldName, fileName, contentType string, content []byte) {
	p.Files = append(p.Files, FormFile{
		FieldName:   fieldName,
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
	})
}

// Get returns the first value of the named field.
func (p *MultipartPayload) Get(name string) string {
	if p == nil {
		return ""
	}
	for _, field := range p.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

func (p *MultipartPayload) IsEmpty() bool {
	return p == nil || (len(p.Fields) == 0 && len(p.Files) == 0)
}
