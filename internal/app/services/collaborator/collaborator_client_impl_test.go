package collaborator

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseUrl string) Client {
	return NewCollaboratorClient(config.AppCollaborator{
		BaseUrl:                 baseUrl,
		RequestTimeoutInSeconds: 5,
	}, zap.NewNop())
}

func TestFindDoctors(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/v1/search/doctors", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id":"d1","fullName":"Dr. Asha Rao","specialization":"Cardiology","hospitalName":"City Care","district":"Mysuru","consultationFee":"500","rating":4.5,"totalReviews":12,"isAvailable":true},
			{"fullName":"Dr. Vikram Shetty","specialization":"Neurology","hospitalName":"Udupi Health","district":"Udupi","consultationFee":700}
		]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api/v1/")
	doctors, err := client.FindDoctors(context.Background(), &models.Session{Subject: "u1", Token: "abc"})
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "d1", doctors[0].ID)
	assert.Equal(t, models.Fee("500"), doctors[0].ConsultationFee)
	assert.Equal(t, models.Fee("700"), doctors[1].ConsultationFee)
	require.NotNil(t, doctors[0].Rating)
	assert.InDelta(t, 4.5, *doctors[0].Rating, 0.001)
	assert.Empty(t, doctors[1].ID)
}

func TestFindHospitalsSpecialtiesShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":"h1","hospitalName":"Mysuru General","district":"Mysuru","specialties":"Cardiology, Neurology"},
			{"id":"h2","hospitalName":"Udupi Health","district":"Udupi","specialties":["Orthopedics","Dermatology"]}
		]`)
	}))
	defer server.Close()

	hospitals, err := newTestClient(server.URL).FindHospitals(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, models.Specialties{"Cardiology, Neurology"}, hospitals[0].Specialties)
	assert.Equal(t, models.Specialties{"Orthopedics", "Dermatology"}, hospitals[1].Specialties)
}

func TestFindDoctorsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"success":false,"message":"forbidden"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FindDoctors(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, exceptions.UpstreamStatus(err))

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
}

func TestFindDoctorsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).FindDoctors(context.Background(), nil)
	require.Error(t, err)
	assert.Zero(t, exceptions.UpstreamStatus(err))
}

func TestFindDoctorsHonoursContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL).FindDoctors(ctx, nil)
	require.Error(t, err)
	assert.Zero(t, exceptions.UpstreamStatus(err))
}

func TestSendInquiry(t *testing.T) {
	t.Run("Success envelope", func(t *testing.T) {
		var payload requests.Inquiry
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/email/send-inquiry", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			_, _ = io.WriteString(w, `{"success":true,"message":"Your inquiry has been sent successfully!"}`)
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).SendInquiry(context.Background(), nil, &requests.Inquiry{
			RecipientEmail: "contact@mysurugeneral.in",
			RecipientName:  "Mysuru General",
			PatientName:    "Asha",
			PatientEmail:   "asha@example.com",
			PatientPhone:   "9876543210",
			Message:        "Visiting hours?",
			RecipientType:  "hospital",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "contact@mysurugeneral.in", payload.RecipientEmail)
		assert.Equal(t, "hospital", payload.RecipientType)
	})

	t.Run("Failure envelope keeps the message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"success":false,"message":"Failed to send inquiry. Please try again later."}`)
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).SendInquiry(context.Background(), nil, &requests.Inquiry{})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to send inquiry. Please try again later.", result.Message)
	})

	t.Run("Failure without envelope is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "upstream down")
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SendInquiry(context.Background(), nil, &requests.Inquiry{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, exceptions.UpstreamStatus(err))
	})
}

func TestCreateAppointmentForwardsPayload(t *testing.T) {
	var payload requests.Appointment
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).CreateAppointment(context.Background(), &models.Session{Subject: "u1", Token: "tok"}, &requests.Appointment{
		DoctorID:            "d1",
		AppointmentDateTime: "2026-10-20T10:30:00",
		Status:              "PENDING",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "2026-10-20T10:30:00", payload.AppointmentDateTime)
	assert.Equal(t, "PENDING", payload.Status)
}
