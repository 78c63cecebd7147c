package constvars

// Error messages for clients
const (
	ErrClientMissingFields                 = "Please fill in the missing fields"
	ErrClientEmailAlreadyExists            = "An account is already associated with the email provided."
	ErrClientEmailNotRegistered            = "The email provided is not associated with any accounts."
	ErrClientInvalidEmailOrPassword        = "Invalid email or password provided."
	ErrClientSomethingWrongWithApplication = "An error occurred while we processed your request. Please try again."
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientTokenRequired                 = "a bearer token is required"
	ErrClientTokenInvalid                  = "invalid bearer token"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientServerLongRespond             = "the app is taking too long to respond"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseDate           = "cannot parse date"
	ErrDevURLParamMissing           = "parameter %s is missing from url path"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevAuthTokenMissing          = "auth token is missing from header"
	ErrDevAuthTokenInvalidOrExpired = "auth token is invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevRateLimitExceeded         = "rate limit exceeded"

	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"

	ErrDevRedisIncrementValue = "failed to increment redis value"
	ErrDevRedisSetExpiry      = "failed to set redis key expiry"
	ErrDevRedisGetValue       = "failed to get redis value"
	ErrDevRedisSetValue       = "failed to set redis value"
	ErrDevRedisDeleteValue    = "failed to delete redis value"

	ErrDevQueuePublishMessage = "failed to publish message to queue"
	ErrDevQueueDeclare        = "failed to declare queue"

	ErrDevMinioPresignObject = "failed to presign object url for bucket %s"
)
