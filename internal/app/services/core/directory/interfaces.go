package directory

import (
	"context"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
)

type DirectoryUsecase interface {
	Catalog(ctx context.Context) *responses.Catalog
	CreateView(ctx context.Context, session *models.Session, request *requests.CreateView, wait bool) (*responses.ViewSnapshot, error)
	GetView(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	DisposeView(ctx context.Context, session *models.Session, viewID string) error
	SwitchCategory(ctx context.Context, session *models.Session, viewID string, request *requests.SwitchCategory, wait bool) (*responses.ViewSnapshot, error)
	ApplyFilters(ctx context.Context, session *models.Session, viewID string, request *requests.ApplyFilters) (*responses.ViewSnapshot, error)
	ClearFilters(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	ChangePage(ctx context.Context, session *models.Session, viewID string, request *requests.ChangePage) (*responses.ViewSnapshot, error)
	SelectRecord(ctx context.Context, session *models.Session, viewID string, request *requests.SelectRecord) (*responses.ViewSnapshot, error)
	CloseDetail(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	OpenInquiry(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	CloseInquiry(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	SubmitInquiry(ctx context.Context, session *models.Session, viewID string, form *requests.InquiryForm) (*responses.ViewSnapshot, error)
	OpenAppointment(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	CloseAppointment(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error)
	SubmitAppointment(ctx context.Context, session *models.Session, viewID string, form *requests.AppointmentForm) (*responses.ViewSnapshot, error)
}
