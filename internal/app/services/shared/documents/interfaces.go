package documents

import (
	"monteluz-service/internal/pkg/clinic_dto"
)

// DocumentRenderer turns aggregated composites into downloadable byte
// streams. Every document is built fully in memory before it is returned.
type DocumentRenderer interface {
	RenderTicket(appointment *clinic_dto.Appointment) ([]byte, error)
	RenderAppointmentList(appointments []clinic_dto.Appointment) ([]byte, error)
	RenderPrescription(appointment *clinic_dto.Appointment, items []clinic_dto.PrescriptionItem) ([]byte, error)
}
