package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingIsClientRequestID = "is_client_request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResourceKey       = "resource"
	LoggingOperationKey      = "operation"
	LoggingBackendUrlKey     = "backend_url"
	LoggingErrorKindKey      = "error_kind"
	LoggingErrorMessageKey   = "error_message"
	LoggingUserIDKey         = "user_id"
	LoggingLocaleKey         = "locale"
	LoggingEntityIDKey       = "entity_id"
	LoggingRoleKey           = "role"
	LoggingRouteKey          = "route"
	LoggingRoutesKey         = "routes"
	LoggingResourcesKey      = "resources"
	LoggingCacheKey          = "cache_key"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingSchoolCountKey    = "school_count"
	LoggingEntryCountKey     = "entry_count"
	LoggingExchangeKey       = "exchange"
	LoggingRedisKey          = "redis_key"
	LoggingLockExpirationKey = "lock_expiration"
)
