package constvars

// Remote backend endpoints, relative to the configured backend base URL.
const (
	EndpointReservations              = "/reservations"
	EndpointReservationsCancelRequest = "/reservations/cancel-request"

	EndpointSuggestions      = "/suggestions"
	EndpointSuggestionsReply = "/suggestions/reply"

	EndpointUsers                 = "/user"
	EndpointUsersSchools          = "/user/schools"
	EndpointUsersRegisterSchool   = "/user/register-school"
	EndpointUsersRegisterPharmacy = "/user/register-pharmacy"
	EndpointCities                = "/cities"

	EndpointPharmacyOrders     = "/pharmacy-orders"
	EndpointPharmacyCategories = "/pharmacy-categories"

	EndpointDoctorAdditionalInfo      = "/doctors/%s/additional-info"
	EndpointDoctorLicense             = "/doctors/%s/licenses/%s"
	EndpointPackages                  = "/packages"
	EndpointStudentAttendance         = "/student-attendance"
	EndpointAuthResetPasswordTemplate = "/auth/reset-password/%s"
)

// Resource names used in logs, spans and error messages.
const (
	ResourceReservations       = "reservations"
	ResourceSuggestions        = "suggestions"
	ResourceUsers              = "users"
	ResourceCities             = "cities"
	ResourcePharmacyOrders     = "pharmacy-orders"
	ResourcePharmacyCategories = "pharmacy-categories"
	ResourcePharmacies         = "pharmacies"
	ResourceDoctors            = "doctors"
	ResourcePackages           = "packages"
	ResourceStudentAttendance  = "student-attendance"
	ResourceAuth               = "auth"
)

// Backend query parameter names.
const (
	QueryParamPage      = "page"
	QueryParamLimit     = "limit"
	QueryParamFilters   = "filters[]"
	QueryParamSortBy    = "sortBy"
	QueryParamID        = "id"
	QueryParamIsDeleted = "isDeleted"
	QueryParamFilter    = "filter"
	QueryParamStatus    = "status"
	QueryParamRole      = "role"

	SortByCreatedAtDesc = "created_at=desc"
)
