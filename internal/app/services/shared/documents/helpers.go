package documents

import (
	"fmt"
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/constvars"
	"strconv"
	"time"
)

func formatAppointmentID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return constvars.RecetaNotAvailable
	}
	return t.Format(constvars.DocumentDateTimeLayout)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return constvars.RecetaNotAvailable
	}
	return t.Format(constvars.DocumentDateLayout)
}

// patientDisplay and doctorDisplay fall back to the raw reference when the
// profile could not be resolved from the remote store.
func patientDisplay(appointment *clinic_dto.Appointment) string {
	if appointment.Patient != nil && appointment.Patient.FullName != "" {
		return appointment.Patient.FullName
	}
	return fmt.Sprintf(constvars.PatientIDFallbackFormat, appointment.PatientID)
}

func doctorDisplay(appointment *clinic_dto.Appointment) string {
	if appointment.Doctor != nil && appointment.Doctor.FullName != "" {
		return appointment.Doctor.FullName
	}
	return fmt.Sprintf(constvars.DoctorIDFallbackFormat, appointment.DoctorID)
}

func doctorFullName(appointment *clinic_dto.Appointment) string {
	if appointment.Doctor == nil {
		return ""
	}
	return appointment.Doctor.FullName
}

func patientFullName(appointment *clinic_dto.Appointment) string {
	if appointment.Patient == nil {
		return ""
	}
	return appointment.Patient.FullName
}

func specialtyName(appointment *clinic_dto.Appointment, fallback string) string {
	if appointment.Doctor != nil && appointment.Doctor.Specialty != nil {
		return appointment.Doctor.Specialty.Name
	}
	return fallback
}

func orDash(value *string) string {
	if value == nil {
		return constvars.RecetaEmptyField
	}
	return *value
}

func orNotAvailable(value *string) string {
	if value == nil || *value == "" {
		return constvars.RecetaNotAvailable
	}
	return *value
}
