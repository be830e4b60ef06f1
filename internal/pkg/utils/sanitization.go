package utils

import (
	"directory-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeApplyFiltersRequest(request *requests.ApplyFilters) {
	request.Search = strings.TrimSpace(request.Search)
	request.District = strings.TrimSpace(request.District)
	request.Specialization = strings.TrimSpace(request.Specialization)
}

func SanitizeInquiryForm(request *requests.InquiryForm) {
	request.PatientName = strings.TrimSpace(request.PatientName)
	request.PatientEmail = strings.ToLower(strings.TrimSpace(request.PatientEmail))
	request.PatientPhone = strings.TrimSpace(request.PatientPhone)
	request.Message = strings.TrimSpace(request.Message)
}

func SanitizeAppointmentForm(request *requests.AppointmentForm) {
	request.AppointmentDate = strings.TrimSpace(request.AppointmentDate)
	request.AppointmentTime = strings.TrimSpace(request.AppointmentTime)
	request.Reason = strings.TrimSpace(request.Reason)
}
