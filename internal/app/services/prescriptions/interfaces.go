package prescriptions

import (
	"context"
	"monteluz-service/internal/pkg/clinic_dto"
)

type PrescriptionUsecase interface {
	// GetPrescriptionIDByAppointment returns the first prescription id for
	// the appointment, or nil when there is none. Retrieval failures are
	// converted to nil as well; this lookup never propagates an error.
	GetPrescriptionIDByAppointment(ctx context.Context, appointmentID int64) *int64

	// GetPrescriptionItems returns the ordered items of a prescription;
	// the slice may be empty.
	GetPrescriptionItems(ctx context.Context, prescriptionID int64) ([]clinic_dto.PrescriptionItem, error)
}
