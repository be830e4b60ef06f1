package constvars

const (
	GetCatalogSuccessMessage        = "Successfully fetched directory catalog"
	CreateViewSuccessMessage        = "Successfully created directory view"
	GetViewSuccessMessage           = "Successfully fetched directory view"
	DisposeViewSuccessMessage       = "Successfully disposed directory view"
	SwitchCategorySuccessMessage    = "Successfully switched directory category"
	ApplyFiltersSuccessMessage      = "Successfully applied filters"
	ClearFiltersSuccessMessage      = "Successfully cleared filters"
	ChangePageSuccessMessage        = "Successfully changed page"
	SelectRecordSuccessMessage      = "Successfully opened record detail"
	CloseDetailSuccessMessage       = "Successfully closed record detail"
	OpenInquirySuccessMessage       = "Successfully opened inquiry form"
	CloseInquirySuccessMessage      = "Successfully closed inquiry form"
	SubmitInquirySuccessMessage     = "Inquiry submission processed"
	OpenAppointmentSuccessMessage   = "Successfully opened appointment form"
	CloseAppointmentSuccessMessage  = "Successfully closed appointment form"
	SubmitAppointmentSuccessMessage = "Appointment submission processed"
)
