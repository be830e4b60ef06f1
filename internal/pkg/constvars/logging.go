package constvars

const (
	LoggingServiceKey          = "service"
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingViewIDKey           = "view_id"
	LoggingCategoryKey         = "category"
	LoggingGenerationKey       = "generation"
	LoggingRecordIDKey         = "record_id"
	LoggingRecordCountKey      = "record_count"
	LoggingCriteriaKey         = "criteria"
	LoggingPageKey             = "page"
	LoggingPresenterStateKey   = "presenter_state"
	LoggingNotificationKey     = "notification"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingQueueKey            = "queue"
	LoggingURLKey              = "url"
	LoggingUpstreamStatusKey   = "upstream_status"
	LoggingIdleViewsEvictedKey = "idle_views_evicted"
)
