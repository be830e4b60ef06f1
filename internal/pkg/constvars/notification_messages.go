package constvars

const (
	NotificationLevelSuccess = "success"
	NotificationLevelError   = "error"
	NotificationLevelInfo    = "info"
)

// Notification texts raised to the person using the directory
const (
	NotifyLoadFailedFormat        = "Failed to load %ss"
	NotifyCollaboratorUnreachable = "Could not connect to server. Please try again later."
	NotifySessionExpired          = "Session expired. Please log in again."
	NotifyFillAllFields           = "Please fill in all fields"
	NotifyInvalidEmail            = "Please enter a valid email address"
	NotifyHospitalNoContactEmail  = "This hospital has no contact e-mail"
	NotifyLoginToBook             = "Please log in to book an appointment"
	NotifyAppointmentDateOutside  = "Please choose a date between today and three months from now"
	NotifyInquirySent             = "Inquiry sent successfully! You will receive a confirmation email."
	NotifyInquiryFailed           = "Failed to send inquiry"
	NotifyInquiryError            = "Failed to send inquiry. Please try again."
	NotifyAppointmentBooked       = "Appointment request sent successfully! The doctor will be notified."
	NotifyAppointmentFailed       = "Failed to book appointment"
	NotifyAppointmentError        = "Failed to book appointment. Please try again."
	NotifySubmissionInProgress    = "Your previous request is still being sent"
	EmptyStateFormat              = "No %ss found"
)
