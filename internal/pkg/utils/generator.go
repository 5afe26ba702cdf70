package utils

import (
	"dashboard-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateFileName(prefix, name, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	if name == "" {
		return fmt.Sprintf("%s_%s%s", prefix, timestamp, fileExtension)
	}
	return fmt.Sprintf("%s_%s_%s%s", prefix, name, timestamp, fileExtension)
}
