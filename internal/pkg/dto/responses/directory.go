package responses

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/directory"
)

type Catalog struct {
	Categories      []models.Category `json:"categories"`
	Districts       []string          `json:"districts"`
	Specializations []string          `json:"specializations"`
	PageSize        int               `json:"page_size"`
}

type LoadState string

const (
	LoadStatePending   LoadState = "pending"
	LoadStateLoading   LoadState = "loading"
	LoadStateCompleted LoadState = "completed"
)

// ViewSnapshot is everything a thin client needs to render the directory.
type ViewSnapshot struct {
	ViewID        string                `json:"view_id"`
	Category      models.Category       `json:"category"`
	LoadState     LoadState             `json:"load_state"`
	Loading       bool                  `json:"loading"`
	Filters       directory.Criteria    `json:"filters"`
	FiltersActive bool                  `json:"filters_active"`
	Page          PageSnapshot          `json:"page"`
	EmptyMessage  string                `json:"empty_message,omitempty"`
	Presenter     PresenterSnapshot     `json:"presenter"`
	Notifications []models.Notification `json:"notifications"`
}

type PageSnapshot struct {
	Number      int                  `json:"number"`
	Size        int                  `json:"size"`
	TotalItems  int                  `json:"total_items"`
	TotalPages  int                  `json:"total_pages"`
	HasPrevious bool                 `json:"has_previous"`
	HasNext     bool                 `json:"has_next"`
	Window      []directory.PageLink `json:"window"`
	Doctors     []models.Doctor      `json:"doctors,omitempty"`
	Hospitals   []models.Hospital    `json:"hospitals,omitempty"`
}

type PresenterSnapshot struct {
	State       string            `json:"state"`
	Detail      *DetailView       `json:"detail,omitempty"`
	Inquiry     *InquiryDraft     `json:"inquiry,omitempty"`
	Appointment *AppointmentDraft `json:"appointment,omitempty"`
	Sending     bool              `json:"sending"`
}

type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

type DetailView struct {
	RecordID    string          `json:"record_id"`
	Category    models.Category `json:"category"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Fields      []DetailField   `json:"fields"`
	Specialties []string        `json:"specialties,omitempty"`
	Description string          `json:"description,omitempty"`
	CanInquire  bool            `json:"can_inquire"`
	CanBook     bool            `json:"can_book"`
}

type InquiryDraft struct {
	RecipientName string `json:"recipient_name"`
	PatientName   string `json:"patientName"`
	PatientEmail  string `json:"patientEmail"`
	PatientPhone  string `json:"patientPhone"`
	Message       string `json:"message"`
}

type AppointmentDraft struct {
	DoctorName string `json:"doctor_name"`
	MinDate    string `json:"min_date"`
	MaxDate    string `json:"max_date"`
}
