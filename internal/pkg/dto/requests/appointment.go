package requests

// AppointmentForm is what the person fills in before booking a doctor.
type AppointmentForm struct {
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required,datetime=15:04"`
	Reason          string `json:"reason" validate:"required"`
}

// Appointment is the payload of POST /appointments.
type Appointment struct {
	PatientName         string `json:"patientName"`
	PatientEmail        string `json:"patientEmail"`
	PatientPhone        string `json:"patientPhone"`
	DoctorID            string `json:"doctorId"`
	DoctorName          string `json:"doctorName"`
	DoctorEmail         string `json:"doctorEmail"`
	HospitalName        string `json:"hospitalName"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Reason              string `json:"reason"`
	Status              string `json:"status"`
}
