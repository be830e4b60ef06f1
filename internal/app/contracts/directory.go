package contracts

import (
	"context"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
)

// DirectorySource returns the full doctor or hospital corpus. Filtering is
// never delegated to it.
type DirectorySource interface {
	FindDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error)
	FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error)
}

// SubmissionClient delivers inquiries and appointment requests.
type SubmissionClient interface {
	SendInquiry(ctx context.Context, session *models.Session, request *requests.Inquiry) (*responses.CollaboratorResult, error)
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.CollaboratorResult, error)
}
