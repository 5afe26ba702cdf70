package statistics

import (
	"bytes"
	"dashboard-service/internal/pkg/dto/responses"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	stats := []responses.SchoolStats{
		{SchoolID: "S1", SchoolName: "Al Noor", Pending: 3, Confirmed: 2, Completed: 1, TotalStudents: 40},
		{SchoolID: "S2", SchoolName: "مدرسة النور", TotalStudents: 10},
	}

	content, err := RenderReport(stats, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRenderReport_Empty(t *testing.T) {
	content, err := RenderReport(nil, time.Now())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("a", 50)
	assert.Equal(t, strings.Repeat("a", 37)+"...", truncate(long, 40))
}
