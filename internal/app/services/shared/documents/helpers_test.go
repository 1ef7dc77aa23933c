package documents

import (
	"monteluz-service/internal/pkg/clinic_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleAppointment() *clinic_dto.Appointment {
	appointmentTime := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	return &clinic_dto.Appointment{
		ID:              42,
		PatientID:       "pid-1",
		DoctorID:        "did-1",
		AppointmentTime: &appointmentTime,
		Diagnosis:       strPtr("Faringitis aguda"),
		Patient: &clinic_dto.Profile{
			ID:       "pid-1",
			FullName: "Juana Pérez",
		},
		Doctor: &clinic_dto.Profile{
			ID:            "did-1",
			FullName:      "Carlos Ruiz",
			LicenseNumber: strPtr("CMP-12345"),
			Specialty:     &clinic_dto.Specialty{ID: 3, Name: "Pediatría"},
		},
	}
}

func TestFormatDateTime(t *testing.T) {
	appointmentTime := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "01/03/2024 02:30 PM", formatDateTime(&appointmentTime))

	morning := time.Date(2024, 12, 24, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "24/12/2024 09:05 AM", formatDateTime(&morning))

	assert.Equal(t, "N/A", formatDateTime(nil))
}

func TestFormatDate(t *testing.T) {
	appointmentTime := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "01/03/2024", formatDate(&appointmentTime))
	assert.Equal(t, "N/A", formatDate(nil))
}

func TestDisplayFallbacks(t *testing.T) {
	appointment := sampleAppointment()
	assert.Equal(t, "Juana Pérez", patientDisplay(appointment))
	assert.Equal(t, "Carlos Ruiz", doctorDisplay(appointment))
	assert.Equal(t, "Pediatría", specialtyName(appointment, "General"))

	appointment.Patient = nil
	appointment.Doctor = nil
	assert.Equal(t, "Patient ID: pid-1", patientDisplay(appointment))
	assert.Equal(t, "Doctor ID: did-1", doctorDisplay(appointment))
	assert.Equal(t, "General", specialtyName(appointment, "General"))
}

func TestOptionalFieldHelpers(t *testing.T) {
	assert.Equal(t, "-", orDash(nil))
	assert.Equal(t, "500mg", orDash(strPtr("500mg")))

	assert.Equal(t, "N/A", orNotAvailable(nil))
	assert.Equal(t, "N/A", orNotAvailable(strPtr("")))
	assert.Equal(t, "CMP-12345", orNotAvailable(strPtr("CMP-12345")))
}
