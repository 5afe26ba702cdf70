package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	// Cookies written by the dashboard sign-in flow.
	CookieAccessToken = "access_token"
	CookieLanguage    = "Language"
)

const (
	REQUEST_ID_PREFIX = "DSHBRD_SVC_"
)

const (
	DefaultItemsPerPage = 10
	DefaultPage         = 1
)

const (
	AttendanceStatusPending   = "PENDING"
	AttendanceStatusConfirmed = "CONFIRMED"
	AttendanceStatusCompleted = "COMPLETED"
)

const (
	UserRoleSchools    = "schools"
	UserRoleParents    = "parents"
	UserRoleDrivers    = "drivers"
	UserRoleSecurity   = "security"
	UserRoleAdmins     = "admins"
	UserRoleSupervisor = "SUPERVISOR"
	UserRoleDoctors    = "doctors"
	UserRolePharmacy   = "PHARMACY"
)

var AllowedUserRoles = map[string]bool{
	UserRoleSchools:    true,
	UserRoleParents:    true,
	UserRoleDrivers:    true,
	UserRoleSecurity:   true,
	UserRoleAdmins:     true,
	UserRoleSupervisor: true,
	UserRoleDoctors:    true,
	UserRolePharmacy:   true,
}

const (
	ReportFileNamePrefix = "school_attendance_report"
	ReportFileExtension  = ".pdf"
	ViewCacheKeyPrefix   = "viewcache"
	ViewCacheRouteSetKey = "viewcache:routes"
	ReportExportLockKey  = "lock:statistics:schools-report"
)
