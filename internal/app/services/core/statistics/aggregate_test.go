package statistics

import (
	"dashboard-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	schools := []responses.School{
		{ID: "S2", Name: "account-2", School: &responses.SchoolDetail{Name: "Al Noor", StudentsCount: 120}},
		{ID: "S1", Name: "Green Valley"},
		{ID: "S3", Name: "Empty School", School: &responses.SchoolDetail{StudentsCount: 15}},
	}
	entries := []responses.AttendanceEntry{
		{ID: "1", Status: "PENDING", SchoolID: "S1"},
		{ID: "2", Status: "confirmed", SchoolID: "S1"},
		{ID: "3", Status: "COMPLETED", School: &responses.AttendanceSchool{ID: "S2"}},
		{ID: "4", Status: "COMPLETED", SchoolID: "S2"},
		{ID: "5", Status: "CANCELLED", SchoolID: "S2"},
		{ID: "6", Status: "PENDING", SchoolID: "S9"},
		{ID: "7", Status: "PENDING"},
	}

	stats := Aggregate(schools, entries)

	assert.Equal(t, []responses.SchoolStats{
		{SchoolID: "S2", SchoolName: "Al Noor", Completed: 2, TotalStudents: 120},
		{SchoolID: "S1", SchoolName: "Green Valley", Pending: 1, Confirmed: 1},
		{SchoolID: "S3", SchoolName: "Empty School", TotalStudents: 15},
	}, stats)
}

func TestAggregate_IsDeterministic(t *testing.T) {
	schools := []responses.School{{ID: "S1", Name: "One"}}
	entries := []responses.AttendanceEntry{{Status: "PENDING", SchoolID: "S1"}}

	assert.Equal(t, Aggregate(schools, entries), Aggregate(schools, entries))
}

func TestAggregate_NoSchools(t *testing.T) {
	stats := Aggregate(nil, []responses.AttendanceEntry{{Status: "PENDING", SchoolID: "S1"}})

	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestAggregate_DuplicateSchoolsCountOnce(t *testing.T) {
	schools := []responses.School{{ID: "S1", Name: "One"}, {ID: "S1", Name: "One again"}}
	entries := []responses.AttendanceEntry{{Status: "PENDING", SchoolID: "S1"}}

	stats := Aggregate(schools, entries)

	assert.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Pending)
}
