package responses

// School is a user of role "schools" as returned by /user/schools.
type School struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	School *SchoolDetail `json:"school,omitempty"`
}

type SchoolDetail struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	StudentsCount int    `json:"students_count"`
}

// DisplayName prefers the school profile name over the account name.
func (s School) DisplayName() string {
	if s.School != nil && s.School.Name != "" {
		return s.School.Name
	}
	return s.Name
}

func (s School) StudentsCount() int {
	if s.School == nil {
		return 0
	}
	return s.School.StudentsCount
}

type AttendanceEntry struct {
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	SchoolID string            `json:"school_id,omitempty"`
	School   *AttendanceSchool `json:"school,omitempty"`
}

type AttendanceSchool struct {
	ID string `json:"id"`
}

// BelongsTo reports whether the entry is attributed to the given school,
// matching either the flat school_id or the nested school object.
func (a AttendanceEntry) BelongsTo(schoolID string) bool {
	if schoolID == "" {
		return false
	}
	if a.SchoolID == schoolID {
		return true
	}
	return a.School != nil && a.School.ID == schoolID
}

type SchoolStats struct {
	SchoolID      string `json:"school_id"`
	SchoolName    string `json:"school_name"`
	Pending       int    `json:"pending"`
	Confirmed     int    `json:"confirmed"`
	Completed     int    `json:"completed"`
	TotalStudents int    `json:"total_students"`
}

type ReportExport struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Schools    int    `json:"schools"`
}
