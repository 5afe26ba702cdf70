package constvars

const (
	ResponseUnknown = "unknown"

	GetReservationSuccessMessage      = "get reservation successfully"
	AcceptCancelRequestSuccessMessage = "reservation cancellation accepted successfully"
	GetSuggestionSuccessMessage       = "get suggestion successfully"
	ReplySuggestionSuccessMessage     = "reply sent successfully"
	GetUserSuccessMessage             = "get user successfully"
	CreateUserSuccessMessage          = "user created successfully"
	UpdateUserSuccessMessage          = "user updated successfully"
	DeleteUserSuccessMessage          = "user deleted successfully"
	UpdateProfileSuccessMessage       = "profile updated successfully"
	GetPharmacyOrderSuccessMessage    = "get pharmacy order successfully"
	CreatePharmacySuccessMessage      = "pharmacy created successfully"
	UpdatePharmacySuccessMessage      = "pharmacy updated successfully"
	UpdateDoctorInfoSuccessMessage    = "doctor additional info updated successfully"
	RemoveDoctorLicenseSuccessMessage = "doctor license removed successfully"
	CreatePackageSuccessMessage       = "package created successfully"
	GetSchoolStatsSuccessMessage      = "get school statistics successfully"
	ExportSchoolStatsSuccessMessage   = "school statistics report exported successfully"
	ResetPasswordSuccessMessage       = "password already reset successfully"
	HealthCheckSuccessMessage         = "service is healthy"
)
