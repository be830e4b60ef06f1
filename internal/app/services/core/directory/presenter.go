package directory

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"directory-service/internal/pkg/exceptions"
	"directory-service/internal/pkg/utils"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

type PresenterState string

const (
	PresenterClosed          PresenterState = "closed"
	PresenterDetailOpen      PresenterState = "detail_open"
	PresenterInquiryOpen     PresenterState = "inquiry_open"
	PresenterAppointmentOpen PresenterState = "appointment_open"
)

// presenter drives the detail modal and the forms nested in it.
type presenter struct {
	state    PresenterState
	category models.Category
	doctor   *models.Doctor
	hospital *models.Hospital
	inquiry  *responses.InquiryDraft
	sending  bool
	// submission identifies the send that set sending; zero when idle
	submission uint64
}

func (p *presenter) reset() {
	*p = presenter{state: PresenterClosed}
}

func (p *presenter) transition(from, to PresenterState) error {
	if p.state != from {
		return exceptions.ErrInvalidTransition(string(p.state), string(to))
	}
	p.state = to
	return nil
}

// recordID is the id of the record on display, empty when closed.
func (p *presenter) recordID() string {
	switch {
	case p.doctor != nil:
		return p.doctor.ID
	case p.hospital != nil:
		return p.hospital.ID
	}
	return ""
}

func (p *presenter) openDoctor(doctor models.Doctor) error {
	if p.sending {
		return exceptions.ErrInvalidTransition(string(p.state), string(PresenterDetailOpen))
	}
	p.reset()
	p.state = PresenterDetailOpen
	p.category = models.CategoryDoctor
	p.doctor = &doctor
	return nil
}

func (p *presenter) openHospital(hospital models.Hospital) error {
	if p.sending {
		return exceptions.ErrInvalidTransition(string(p.state), string(PresenterDetailOpen))
	}
	p.reset()
	p.state = PresenterDetailOpen
	p.category = models.CategoryHospital
	p.hospital = &hospital
	return nil
}

func (p *presenter) closeDetail() error {
	if p.state != PresenterDetailOpen {
		return exceptions.ErrInvalidTransition(string(p.state), string(PresenterClosed))
	}
	p.reset()
	return nil
}

// openInquiry pre-fills the form from the session.
func (p *presenter) openInquiry(session *models.Session) error {
	if err := p.transition(PresenterDetailOpen, PresenterInquiryOpen); err != nil {
		return err
	}
	p.inquiry = &responses.InquiryDraft{RecipientName: p.recipientName()}
	if session.Authenticated() {
		p.inquiry.PatientName = session.FullName
		p.inquiry.PatientEmail = session.Email
		p.inquiry.PatientPhone = session.Phone
	}
	return nil
}

func (p *presenter) closeInquiry() error {
	if p.sending {
		return exceptions.ErrSubmissionInProgress(string(PresenterInquiryOpen))
	}
	if err := p.transition(PresenterInquiryOpen, PresenterDetailOpen); err != nil {
		return err
	}
	p.inquiry = nil
	return nil
}

func (p *presenter) openAppointment() error {
	if p.category != models.CategoryDoctor {
		return exceptions.ErrInvalidTransition(string(p.state), string(PresenterAppointmentOpen))
	}
	return p.transition(PresenterDetailOpen, PresenterAppointmentOpen)
}

func (p *presenter) closeAppointment() error {
	if p.sending {
		return exceptions.ErrSubmissionInProgress(string(PresenterAppointmentOpen))
	}
	return p.transition(PresenterAppointmentOpen, PresenterDetailOpen)
}

func (p *presenter) beginSend(token uint64) {
	p.sending = true
	p.submission = token
}

// finishSend clears sending only for the send that set it and reports whether
// token is still the current send.
func (p *presenter) finishSend(token uint64) bool {
	if !p.sending || p.submission != token {
		return false
	}
	p.sending = false
	p.submission = 0
	return true
}

// succeed returns to the detail after a delivered submission and resets the form.
func (p *presenter) succeed(from PresenterState, recordID string) {
	if p.state != from || p.recordID() != recordID {
		return
	}
	p.state = PresenterDetailOpen
	p.inquiry = nil
}

func (p *presenter) recipientName() string {
	if p.hospital != nil {
		return p.hospital.HospitalName
	}
	if p.doctor != nil {
		return p.doctor.FullName
	}
	return ""
}

// buildInquiry validates the form the way the browser did and returns the
// notification text to raise when it cannot be sent.
func (p *presenter) buildInquiry(form *requests.InquiryForm) (*requests.Inquiry, string) {
	if problem := formProblem(form); problem != "" {
		return nil, problem
	}

	inquiry := &requests.Inquiry{
		RecipientName: p.recipientName(),
		PatientName:   form.PatientName,
		PatientEmail:  form.PatientEmail,
		PatientPhone:  form.PatientPhone,
		Message:       form.Message,
		RecipientType: string(p.category),
	}

	switch p.category {
	case models.CategoryHospital:
		if !present(p.hospital.Contact) {
			return nil, constvars.NotifyHospitalNoContactEmail
		}
		inquiry.RecipientEmail = p.hospital.Contact
	case models.CategoryDoctor:
		inquiry.RecipientEmail = doctorEmail(*p.doctor)
	}
	return inquiry, ""
}

func (p *presenter) buildAppointment(session *models.Session, form *requests.AppointmentForm, now time.Time) (*requests.Appointment, string) {
	if problem := formProblem(form); problem != "" {
		return nil, problem
	}
	if !session.Authenticated() {
		return nil, constvars.NotifyLoginToBook
	}

	minDate, maxDate := appointmentWindow(now)
	date, err := time.ParseInLocation(constvars.AppointmentDateLayout, form.AppointmentDate, now.Location())
	if err != nil {
		return nil, constvars.NotifyFillAllFields
	}
	if date.Before(minDate) || date.After(maxDate) {
		return nil, constvars.NotifyAppointmentDateOutside
	}

	doctor := p.doctor
	return &requests.Appointment{
		PatientName:         session.FullName,
		PatientEmail:        session.Email,
		PatientPhone:        session.Phone,
		DoctorID:            doctor.ID,
		DoctorName:          doctor.FullName,
		DoctorEmail:         doctorEmail(*doctor),
		HospitalName:        doctor.HospitalName,
		AppointmentDateTime: form.AppointmentDate + "T" + form.AppointmentTime + ":00",
		Reason:              form.Reason,
		Status:              constvars.AppointmentStatusPending,
	}, ""
}

// formProblem maps the first failed validation rule of a form to the
// notification shown for it.
func formProblem(form interface{}) string {
	err := utils.ValidateStruct(form)
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.NotifyFillAllFields
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return constvars.NotifyFillAllFields
		}
	}
	if validationErrors[0].Tag() == "email" {
		return constvars.NotifyInvalidEmail
	}
	return constvars.NotifyFillAllFields
}

// appointmentWindow is [today, today + 3 months] at midnight in now's location.
func appointmentWindow(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today, today.AddDate(0, constvars.AppointmentBookingMonths, 0)
}

func (p *presenter) snapshot(now time.Time) responses.PresenterSnapshot {
	result := responses.PresenterSnapshot{
		State:   string(p.state),
		Sending: p.sending,
	}

	switch {
	case p.doctor != nil:
		result.Detail = doctorDetail(*p.doctor)
	case p.hospital != nil:
		result.Detail = hospitalDetail(*p.hospital)
	}

	if p.state == PresenterInquiryOpen && p.inquiry != nil {
		draft := *p.inquiry
		result.Inquiry = &draft
	}
	if p.state == PresenterAppointmentOpen && p.doctor != nil {
		minDate, maxDate := appointmentWindow(now)
		result.Appointment = &responses.AppointmentDraft{
			DoctorName: p.doctor.FullName,
			MinDate:    minDate.Format(constvars.AppointmentDateLayout),
			MaxDate:    maxDate.Format(constvars.AppointmentDateLayout),
		}
	}
	return result
}
