package config

type InternalConfig struct {
	App          App
	Collaborator AppCollaborator
	Directory    AppDirectory
	JWT          AppJWT
	RabbitMQ     AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

// AppCollaborator configures calls to the records backend.
type AppCollaborator struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    float64
	Burst                   int
}

type AppDirectory struct {
	// Source is either "rest" or "mongo"
	Source string
	// LockDriver is either "redis" or "memory"
	LockDriver                     string
	SubmissionLockTimeoutInSeconds int
	ViewIdleTimeoutInMinutes       int
	ViewSweepCronSpec              string
	MaxNotificationsPerView        int
}

type AppJWT struct {
	Secret string
}

type AppRabbitMQ struct {
	// NotificationQueue is left empty to keep notifications inside the view
	NotificationQueue string
}
