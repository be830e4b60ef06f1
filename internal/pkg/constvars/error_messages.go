package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"oneof":    "must be one of %s",
	"district": "must be one of the supported districts",
	"category": "must be either doctor or hospital",
	"datetime": "must match the format %s",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientViewNotFound                  = "directory view not found, please reload the page"
	ErrClientRecordNotFound                = "the selected record is no longer available"
	ErrClientActionNotAllowedNow           = "this action is not available right now"
	ErrClientSubmissionInProgress          = "your previous request is still being sent"
	ErrClientCollaboratorUnavailable       = "the directory service is unavailable, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server process error"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request to %s"
	ErrDevCollaboratorStatus         = "collaborator %s responded with status %d"
	ErrDevDecodeCollaboratorResponse = "failed to decode collaborator response from %s"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevViewNotFound               = "view %s not found"
	ErrDevRecordNotFound             = "record %s not found in %s directory"
	ErrDevInvalidPresenterTransition = "cannot move presenter from %s to %s"
	ErrDevSubmissionInProgress       = "submission already in flight for %s"
	ErrDevMongoDBFindDocument        = "failed to find document in %s"
	ErrDevMongoDBIterateDocuments    = "failed to iterate documents in %s"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
)
