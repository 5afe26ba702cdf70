package statistics

import (
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/responses"
	"strings"
)

// Aggregate counts attendance entries per school. Schools keep their input
// order and schools without entries report zeros. Entries with other
// statuses or unknown schools are ignored.
func Aggregate(schools []responses.School, entries []responses.AttendanceEntry) []responses.SchoolStats {
	stats := make([]responses.SchoolStats, 0, len(schools))
	index := make(map[string]int, len(schools))
	for _, school := range schools {
		if _, seen := index[school.ID]; seen {
			continue
		}
		index[school.ID] = len(stats)
		stats = append(stats, responses.SchoolStats{
			SchoolID:      school.ID,
			SchoolName:    school.DisplayName(),
			TotalStudents: school.StudentsCount(),
		})
	}

	for _, entry := range entries {
		position, ok := index[entrySchoolID(entry)]
		if !ok {
			continue
		}
		switch strings.ToUpper(entry.Status) {
		case constvars.AttendanceStatusPending:
			stats[position].Pending++
		case constvars.AttendanceStatusConfirmed:
			stats[position].Confirmed++
		case constvars.AttendanceStatusCompleted:
			stats[position].Completed++
		}
	}
	return stats
}

func entrySchoolID(entry responses.AttendanceEntry) string {
	if entry.SchoolID != "" {
		return entry.SchoolID
	}
	if entry.School != nil {
		return entry.School.ID
	}
	return ""
}
