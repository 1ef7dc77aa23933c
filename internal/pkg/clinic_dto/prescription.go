package clinic_dto

import "time"

type Prescription struct {
	ID            int64              `json:"id"`
	AppointmentID int64              `json:"appointment_id"`
	PatientID     *string            `json:"patient_id,omitempty"`
	DoctorID      *string            `json:"doctor_id,omitempty"`
	CreatedAt     *time.Time         `json:"created_at,omitempty"`
	Items         []PrescriptionItem `json:"items,omitempty"`
}

// PrescriptionItem keeps every optional column as a pointer; renderers
// substitute a dash for nil fields.
type PrescriptionItem struct {
	ID             int64   `json:"id"`
	PrescriptionID int64   `json:"prescription_id"`
	Medication     *string `json:"medication,omitempty"`
	Dosage         *string `json:"dosage,omitempty"`
	Frequency      *string `json:"frequency,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
