package appointments

import (
	"context"
	"monteluz-service/internal/pkg/clinic_dto"
)

type AppointmentUsecase interface {
	// GetAppointmentWithDetails assembles the composite view for one
	// appointment. A nil composite with a nil error means the appointment
	// does not exist; missing patient/doctor/specialty rows are tolerated
	// and leave the embed nil.
	GetAppointmentWithDetails(ctx context.Context, appointmentID int64) (*clinic_dto.Appointment, error)

	// GetAppointmentsByPatient returns every appointment of a patient,
	// each enriched with the same nested fetches as the by-id lookup.
	GetAppointmentsByPatient(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error)
}
