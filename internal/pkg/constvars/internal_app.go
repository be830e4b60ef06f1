package constvars

type ContextKey string

const ServiceName = "directory-service"

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	DirectorySourceREST  = "rest"
	DirectorySourceMongo = "mongo"
)

const (
	LockDriverRedis  = "redis"
	LockDriverMemory = "memory"
)

const (
	MongoCollectionDoctors   = "doctors"
	MongoCollectionHospitals = "hospitals"
)

const (
	CollaboratorPathSearchDoctors   = "/search/doctors"
	CollaboratorPathSearchHospitals = "/search/hospitals"
	CollaboratorPathSendInquiry     = "/email/send-inquiry"
	CollaboratorPathAppointments    = "/appointments"
)

const (
	RedisKeySubmissionLockFormat = "directory:submit:%s:%s:%s"
)

const (
	AppointmentStatusPending   = "PENDING"
	AppointmentDateLayout      = "2006-01-02"
	AppointmentBookingMonths   = 3
	DerivedDoctorEmailTemplate = "%s@%s.com"
)

const (
	ResponseUnknown = "unknown"
)
