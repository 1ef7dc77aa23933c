package clinic_dto

import "time"

// Appointment is the composite view assembled per request: the appointment row
// plus whatever referenced profiles could be resolved. It is never persisted.
type Appointment struct {
	ID              int64          `json:"id"`
	PatientID       string         `json:"patient_id"`
	DoctorID        string         `json:"doctor_id"`
	AppointmentTime *time.Time     `json:"appointment_time,omitempty"`
	Status          *string        `json:"status,omitempty"`
	Diagnosis       *string        `json:"diagnosis,omitempty"`
	Rating          *int           `json:"rating,omitempty"`
	Feedback        *string        `json:"feedback,omitempty"`
	Patient         *Profile       `json:"patient,omitempty"`
	Doctor          *Profile       `json:"doctor,omitempty"`
	Prescriptions   []Prescription `json:"prescriptions,omitempty"`
}
