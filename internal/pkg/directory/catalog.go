// Package directory holds the pure search logic behind the doctor and
// hospital directories: predicate filtering, pagination and the page-number
// window. Nothing in here performs I/O.
package directory

import "strings"

// PageSize is the number of records shown per directory page.
const PageSize = 12

// Districts is the closed set a district predicate may take.
var Districts = []string{
	"Mysuru",
	"Bengaluru",
	"Udupi",
	"Raichur",
	"Davangere",
	"Hubli",
	"Shivamogga",
}

// Specializations are the values offered by the specialization picker.
var Specializations = []string{
	"Cardiology", "Neurology", "Nephrology", "Gastroenterology", "Pulmonology",
	"Endocrinology", "Oncology", "Urology", "Orthopedics", "General Surgery", "Plastic Surgery",
	"Pediatric Surgery", "Neurosurgery", "Cardiothoracic Surgery", "ENT",
	"Ophthalmology", "Dermatology", "Psychiatry", "Psychology", "Pediatrics", "Obstetrics and Gynecology",
	"General Medicine", "Critical Care", "Emergency Medicine", "Radiology", "Pathology",
	"Dentistry", "Anesthesiology", "Physiotherapy", "Diabetology", "Rheumatology",
}

// IsKnownDistrict reports whether name belongs to Districts, ignoring case.
func IsKnownDistrict(name string) bool {
	for _, district := range Districts {
		if strings.EqualFold(district, name) {
			return true
		}
	}
	return false
}
