package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_DOCTOR_ID_KEY            ContextKey = "doctor_id"
	CONTEXT_DOCTOR_EMAIL_KEY         ContextKey = "doctor_email"
)

const (
	REQUEST_ID_PREFIX = "INTRNSTK_SVC_"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionVisits       = "visits"
	MongoCollectionAppointments = "appointments"
)

const (
	JWTClaimDoctorID = "doctor_id"
	JWTClaimEmail    = "email"
)

// Pagination bounds for list endpoints. Page below 1 is clamped to 1,
// limit outside [1, PaginationMaxLimit] is clamped into the range.
const (
	PaginationDefaultLimit = 10
	PaginationMaxLimit     = 100
)

// Visit media kinds. The object names handed out by the upload-url endpoint
// are what clients store in the matching visit list field.
const (
	VisitMediaKindRentgen = "rentgen"
	VisitMediaKindCT      = "ct"
	VisitMediaKindEcho    = "echo"
)

const (
	RateLimitLoginKeyFormat = "ratelimit:auth:%s"
)
