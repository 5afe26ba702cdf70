package utils

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractBackendMessage pulls a human readable message out of a failed
// backend response body. It looks at `message` (a string, or the first
// element when the backend sends a list of validation messages), then
// `error` as a string, then `error.message`. It returns "" when none apply.
func ExtractBackendMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}

	message := gjson.GetBytes(body, "message")
	if message.IsArray() {
		for _, item := range message.Array() {
			if text := strings.TrimSpace(item.String()); text != "" {
				return text
			}
		}
	} else if message.Type == gjson.String {
		if text := strings.TrimSpace(message.String()); text != "" {
			return text
		}
	}

	errorField := gjson.GetBytes(body, "error")
	if errorField.Type == gjson.String {
		if text := strings.TrimSpace(errorField.String()); text != "" {
			return text
		}
	}
	if errorField.IsObject() {
		if text := strings.TrimSpace(errorField.Get("message").String()); text != "" {
			return text
		}
	}

	return ""
}
