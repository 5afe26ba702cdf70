package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"eqfield":           "must match %s",
	"password":          "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":           "must be a number",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"latitude":          "must be a valid latitude",
	"longitude":         "must be a valid longitude",
	"required_with":     "is required when %s is present",
	"availability":      "shouldn't be empty",
	"clinic_consistent": "name must be set together with clinic_consultation_price",
	"dive":              "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"eqfield":       true,
	"gt":            true,
	"gte":           true,
	"lte":           true,
	"oneof":         true,
	"required_with": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientInvalidUserRole               = "unknown user role '%s'"
	ErrClientReportExportInProgress        = "a report export is already in progress, try again shortly"
	ErrClientTooManyAttendanceEntries      = "too many attendance entries to aggregate"

	// Normalized gateway messages, surfaced as {"error": "..."}
	ErrClientNetworkError            = "network error"
	ErrClientRequestTimedOut         = "request timed out"
	ErrClientRequestFailedWithStatus = "request failed with status code %d"
	ErrClientInvalidBackendResponse  = "invalid response from server"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevBuildMultipartBody       = "failed to build multipart body"

	// Remote backend messages
	ErrDevBackendTimeout          = "backend %s request timed out"
	ErrDevBackendUnreachable      = "backend %s request could not be delivered"
	ErrDevBackendRespondedFailure = "backend %s responded with status %d"
	ErrDevBackendDecodeResponse   = "failed to decode backend %s response"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSAdd       = "failed to add members to redis set"
	ErrDevRedisSMembers   = "failed to get members of redis set"
	ErrDevRedisSRem       = "failed to remove members from redis set"
	ErrDevRedisUnlock     = "failed to release redis lock"
	ErrDevRedisExpire     = "failed to set expiry on redis key"
	ErrDevRedisZAdd       = "failed to add members to redis sorted set"
	ErrDevRedisZRange     = "failed to get members of redis sorted set"
	ErrDevRedisZRem       = "failed to remove members from redis sorted set"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq exchange '%s'"

	// Report messages
	ErrDevRenderReport          = "failed to render statistics report"
	ErrDevReportLockNotAcquired = "report export lock is held by another request"
	ErrDevAttendancePageLimit   = "attendance still has entries after %d pages"
)
