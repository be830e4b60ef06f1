package requests

// InquiryForm is what the person fills in before sending an inquiry.
type InquiryForm struct {
	PatientName  string `json:"patientName" validate:"required"`
	PatientEmail string `json:"patientEmail" validate:"required,email"`
	PatientPhone string `json:"patientPhone" validate:"required"`
	Message      string `json:"message" validate:"required"`
}

// Inquiry is the payload of POST /email/send-inquiry.
type Inquiry struct {
	RecipientEmail string `json:"recipientEmail"`
	RecipientName  string `json:"recipientName"`
	PatientName    string `json:"patientName"`
	PatientEmail   string `json:"patientEmail"`
	PatientPhone   string `json:"patientPhone"`
	Message        string `json:"message"`
	RecipientType  string `json:"recipientType"`
}
