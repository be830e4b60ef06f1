package directory

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/models"
	"directory-service/internal/app/services/shared/locker"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedSource serves fixed lists. A call whose number has a gate blocks
// until the gate is closed, regardless of its context.
type gatedSource struct {
	mu        sync.Mutex
	calls     int
	gates     map[int]chan struct{}
	doctors   []models.Doctor
	hospitals []models.Hospital
	err       error
}

func (s *gatedSource) begin() ([]models.Doctor, []models.Hospital, error) {
	s.mu.Lock()
	s.calls++
	gate := s.gates[s.calls]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Doctor(nil), s.doctors...), append([]models.Hospital(nil), s.hospitals...), s.err
}

func (s *gatedSource) FindDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error) {
	doctors, _, err := s.begin()
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *gatedSource) FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error) {
	_, hospitals, err := s.begin()
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (s *gatedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// fakeSubmissionClient records requests. An inquiry whose recipient has a
// gate announces itself on entered and blocks until the gate is closed.
type fakeSubmissionClient struct {
	mu           sync.Mutex
	inquiries    []requests.Inquiry
	appointments []requests.Appointment
	result       *responses.CollaboratorResult
	err          error
	gates        map[string]chan struct{}
	entered      chan string
}

func (c *fakeSubmissionClient) SendInquiry(ctx context.Context, session *models.Session, request *requests.Inquiry) (*responses.CollaboratorResult, error) {
	c.mu.Lock()
	c.inquiries = append(c.inquiries, *request)
	gate := c.gates[request.RecipientName]
	c.mu.Unlock()

	if gate != nil {
		c.entered <- request.RecipientName
		<-gate
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.err
}

func (c *fakeSubmissionClient) CreateAppointment(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.CollaboratorResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appointments = append(c.appointments, *request)
	return c.result, c.err
}

func (c *fakeSubmissionClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inquiries) + len(c.appointments)
}

type recordingPublisher struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (p *recordingPublisher) Publish(ctx context.Context, notification models.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, notification)
	return nil
}

type fixture struct {
	usecase   *directoryUsecase
	source    *gatedSource
	client    *fakeSubmissionClient
	publisher *recordingPublisher
}

func newFixture(t *testing.T, source *gatedSource) *fixture {
	t.Helper()
	if source == nil {
		source = &gatedSource{}
	}
	client := &fakeSubmissionClient{result: &responses.CollaboratorResult{Success: true}}
	publisher := &recordingPublisher{}
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App:          config.App{Timezone: "UTC"},
		Collaborator: config.AppCollaborator{RequestTimeoutInSeconds: 5},
		Directory: config.AppDirectory{
			SubmissionLockTimeoutInSeconds: 30,
			MaxNotificationsPerView:        20,
		},
	}

	registry := NewRegistry(internalConfig.Directory.MaxNotificationsPerView)
	t.Cleanup(registry.Close)
	loader := NewLoader(source, publisher, 5*time.Second, logger)
	usecase := NewDirectoryUsecase(registry, loader, client, locker.NewMemoryLockService(), publisher, internalConfig, logger)

	uc, ok := usecase.(*directoryUsecase)
	require.True(t, ok)
	return &fixture{usecase: uc, source: source, client: client, publisher: publisher}
}

func anonymous() *models.Session {
	return &models.Session{}
}

func signedIn() *models.Session {
	return &models.Session{Subject: "user-1", FullName: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Token: "token"}
}

func manyDoctors(n int) []models.Doctor {
	doctors := make([]models.Doctor, 0, n)
	for i := 0; i < n; i++ {
		doctors = append(doctors, models.Doctor{
			ID:             fmt.Sprintf("d%d", i+1),
			FullName:       fmt.Sprintf("Dr. Doctor %02d", i+1),
			Specialization: "General Medicine",
			HospitalName:   "City Care",
			District:       "Bengaluru",
		})
	}
	return doctors
}

func messages(snapshot *responses.ViewSnapshot) []string {
	var result []string
	for _, notification := range snapshot.Notifications {
		result = append(result, notification.Message)
	}
	return result
}
