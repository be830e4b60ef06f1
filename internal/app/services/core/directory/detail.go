package directory

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/dto/responses"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const notAvailable = "N/A"

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	nonLocalPart    = regexp.MustCompile(`[^a-z.]`)
	nonDomainLetter = regexp.MustCompile(`[^a-z]`)
)

// present treats blanks and the literal N/A placeholder as missing.
func present(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, notAvailable)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

// doctorEmail is the doctor's own address, or one derived from the name and
// hospital when the directory has none.
func doctorEmail(doctor models.Doctor) string {
	if present(doctor.Email) {
		return doctor.Email
	}
	local := whitespaceRun.ReplaceAllString(strings.ToLower(doctor.FullName), ".")
	local = nonLocalPart.ReplaceAllString(local, "")
	domain := whitespaceRun.ReplaceAllString(strings.ToLower(doctor.HospitalName), "")
	domain = nonDomainLetter.ReplaceAllString(domain, "")
	return fmt.Sprintf(constvars.DerivedDoctorEmailTemplate, local, domain)
}

func doctorDetail(doctor models.Doctor) *responses.DetailView {
	fields := []responses.DetailField{
		{Label: "Specialization", Value: orNA(doctor.Specialization)},
		{Label: "Hospital", Value: orNA(doctor.HospitalName)},
		{Label: "Location", Value: orNA(doctor.District)},
	}
	if doctor.Rating != nil && *doctor.Rating > 0 {
		reviews := 0
		if doctor.TotalReviews != nil {
			reviews = *doctor.TotalReviews
		}
		fields = append(fields, responses.DetailField{
			Label: "Rating",
			Value: fmt.Sprintf("%s (%d reviews)", strconv.FormatFloat(*doctor.Rating, 'f', -1, 64), reviews),
		})
	}
	if present(string(doctor.ConsultationFee)) {
		fields = append(fields, responses.DetailField{Label: "Consultation Fee", Value: "₹" + string(doctor.ConsultationFee)})
	}
	if doctor.IsAvailable != nil {
		availability := "Not Available"
		if *doctor.IsAvailable {
			availability = "Available"
		}
		fields = append(fields, responses.DetailField{Label: "Availability", Value: availability})
	}

	return &responses.DetailView{
		RecordID:   doctor.ID,
		Category:   models.CategoryDoctor,
		Title:      orNA(doctor.FullName),
		Subtitle:   orNA(doctor.Specialization),
		Fields:     fields,
		CanInquire: true,
		CanBook:    true,
	}
}

func hospitalDetail(hospital models.Hospital) *responses.DetailView {
	fields := []responses.DetailField{
		{Label: "Type", Value: orNA(hospital.HospitalType)},
		{Label: "Address", Value: orNA(hospital.Location) + ", " + orNA(hospital.District)},
	}
	if present(hospital.Phone) {
		fields = append(fields, responses.DetailField{Label: "Primary Phone", Value: hospital.Phone, Href: "tel:" + hospital.Phone})
	}
	if present(hospital.AltPhone) {
		fields = append(fields, responses.DetailField{Label: "Alternate Phone", Value: hospital.AltPhone, Href: "tel:" + hospital.AltPhone})
	}
	if present(hospital.Contact) {
		fields = append(fields, responses.DetailField{Label: "Email", Value: hospital.Contact, Href: "mailto:" + hospital.Contact})
	}

	var specialties []string
	for _, specialty := range hospital.Specialties {
		if strings.TrimSpace(specialty) != "" {
			specialties = append(specialties, specialty)
		}
	}

	return &responses.DetailView{
		RecordID:    hospital.ID,
		Category:    models.CategoryHospital,
		Title:       orNA(hospital.HospitalName),
		Subtitle:    orNA(hospital.HospitalType),
		Fields:      fields,
		Specialties: specialties,
		Description: hospital.Description,
		CanInquire:  true,
	}
}
