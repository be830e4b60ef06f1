package directory

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorEmail(t *testing.T) {
	tests := []struct {
		name   string
		doctor models.Doctor
		want   string
	}{
		{
			name:   "Derived from name and hospital",
			doctor: models.Doctor{FullName: "Dr. Asha Rao", HospitalName: "City Care Hospital"},
			want:   "dr..asha.rao@citycarehospital.com",
		},
		{
			name:   "Runs of whitespace collapse",
			doctor: models.Doctor{FullName: "  Ravi   Kumar ", HospitalName: "St. John's  Medical"},
			want:   ".ravi.kumar.@stjohnsmedical.com",
		},
		{
			name:   "Own address wins",
			doctor: models.Doctor{FullName: "Asha Rao", HospitalName: "City Care", Email: "asha@citycare.in"},
			want:   "asha@citycare.in",
		},
		{
			name:   "Placeholder address is ignored",
			doctor: models.Doctor{FullName: "Asha Rao", HospitalName: "City Care", Email: "N/A"},
			want:   "asha.rao@citycare.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doctorEmail(tt.doctor))
		})
	}
}

func TestDoctorDetail(t *testing.T) {
	t.Run("Missing fields read N/A", func(t *testing.T) {
		detail := doctorDetail(models.Doctor{ID: "d1", FullName: "Asha Rao"})
		assert.Equal(t, "Asha Rao", detail.Title)
		assert.Equal(t, []responses.DetailField{
			{Label: "Specialization", Value: "N/A"},
			{Label: "Hospital", Value: "N/A"},
			{Label: "Location", Value: "N/A"},
		}, detail.Fields)
		assert.True(t, detail.CanBook)
	})

	t.Run("Optional fields appear when known", func(t *testing.T) {
		rating := 4.5
		reviews := 120
		available := false
		detail := doctorDetail(models.Doctor{
			ID:              "d1",
			FullName:        "Asha Rao",
			Specialization:  "Cardiology",
			HospitalName:    "City Care",
			District:        "Mysuru",
			Rating:          &rating,
			TotalReviews:    &reviews,
			ConsultationFee: "500",
			IsAvailable:     &available,
		})
		require.Len(t, detail.Fields, 6)
		assert.Equal(t, responses.DetailField{Label: "Rating", Value: "4.5 (120 reviews)"}, detail.Fields[3])
		assert.Equal(t, responses.DetailField{Label: "Consultation Fee", Value: "₹500"}, detail.Fields[4])
		assert.Equal(t, responses.DetailField{Label: "Availability", Value: "Not Available"}, detail.Fields[5])
	})
}

func TestHospitalDetail(t *testing.T) {
	t.Run("Contacts become links", func(t *testing.T) {
		detail := hospitalDetail(models.Hospital{
			ID:           "h1",
			HospitalName: "Mysuru General",
			HospitalType: "Government",
			Location:     "Sayyaji Rao Road",
			District:     "Mysuru",
			Phone:        "0821-2423300",
			AltPhone:     "N/A",
			Contact:      "contact@mysurugeneral.in",
			Specialties:  models.Specialties{"Cardiology", " ", "ENT"},
			Description:  "District hospital",
		})
		assert.Equal(t, []responses.DetailField{
			{Label: "Type", Value: "Government"},
			{Label: "Address", Value: "Sayyaji Rao Road, Mysuru"},
			{Label: "Primary Phone", Value: "0821-2423300", Href: "tel:0821-2423300"},
			{Label: "Email", Value: "contact@mysurugeneral.in", Href: "mailto:contact@mysurugeneral.in"},
		}, detail.Fields)
		assert.Equal(t, []string{"Cardiology", "ENT"}, detail.Specialties)
		assert.Equal(t, "District hospital", detail.Description)
		assert.False(t, detail.CanBook)
	})

	t.Run("Unknown address parts", func(t *testing.T) {
		detail := hospitalDetail(models.Hospital{ID: "h2", HospitalName: "Udupi Health"})
		assert.Equal(t, responses.DetailField{Label: "Address", Value: "N/A, N/A"}, detail.Fields[1])
		assert.Len(t, detail.Fields, 2)
	})
}

func TestAppointmentWindow(t *testing.T) {
	location := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.November, 30, 22, 15, 0, 0, location)

	minDate, maxDate := appointmentWindow(now)
	assert.Equal(t, time.Date(2024, time.November, 30, 0, 0, 0, 0, location), minDate)
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, location), maxDate)
}

func TestBuildAppointmentWindowEdges(t *testing.T) {
	now := time.Date(2024, time.June, 10, 18, 0, 0, 0, time.UTC)
	session := signedIn()
	p := &presenter{}
	require.NoError(t, p.openDoctor(models.Doctor{ID: "d1", FullName: "Asha Rao", HospitalName: "City Care"}))
	require.NoError(t, p.openAppointment())

	tests := []struct {
		date    string
		problem string
	}{
		{date: "2024-06-09", problem: "Please choose a date between today and three months from now"},
		{date: "2024-06-10"},
		{date: "2024-09-10"},
		{date: "2024-09-11", problem: "Please choose a date between today and three months from now"},
		{date: "10/06/2024", problem: "Please fill in all fields"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			payload, problem := p.buildAppointment(session, &requests.AppointmentForm{
				AppointmentDate: tt.date,
				AppointmentTime: "09:00",
				Reason:          "Check up",
			}, now)
			assert.Equal(t, tt.problem, problem)
			if tt.problem == "" {
				require.NotNil(t, payload)
				assert.Equal(t, tt.date+"T09:00:00", payload.AppointmentDateTime)
			}
		})
	}
}

func TestPresenterSnapshotOnlyShowsOpenForms(t *testing.T) {
	now := time.Date(2024, time.June, 10, 18, 0, 0, 0, time.UTC)
	p := &presenter{}
	p.reset()

	closed := p.snapshot(now)
	assert.Equal(t, "closed", closed.State)
	assert.Nil(t, closed.Detail)

	require.NoError(t, p.openDoctor(models.Doctor{ID: "d1", FullName: "Asha Rao"}))
	require.NoError(t, p.openAppointment())
	open := p.snapshot(now)
	require.NotNil(t, open.Appointment)
	assert.Equal(t, "2024-06-10", open.Appointment.MinDate)
	assert.Equal(t, "2024-09-10", open.Appointment.MaxDate)
	assert.Nil(t, open.Inquiry)
}
