package constvars

// Supabase exposes every table under its PostgREST endpoint.
const SupabaseRestPath = "/rest/v1"

const (
	ResourceAppointments      = "appointments"
	ResourceProfiles          = "profiles"
	ResourceSpecialties       = "specialties"
	ResourcePrescriptions     = "prescriptions"
	ResourcePrescriptionItems = "prescription_items"
)

const (
	FieldID              = "id"
	FieldPatientID       = "patient_id"
	FieldDoctorID        = "doctor_id"
	FieldAppointmentID   = "appointment_id"
	FieldPrescriptionID  = "prescription_id"
	FieldSpecialtyID     = "specialty_id"
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldRole            = "role"
	FieldLicenseNumber   = "license_number"
	FieldName            = "name"
	FieldAppointmentTime = "appointment_time"
	FieldStatus          = "status"
	FieldDiagnosis       = "diagnosis"
	FieldRating          = "rating"
	FieldFeedback        = "feedback"
	FieldCreatedAt       = "created_at"
	FieldMedication      = "medication"
	FieldDosage          = "dosage"
	FieldFrequency       = "frequency"
	FieldDuration        = "duration"
	FieldNotes           = "notes"
)

const (
	QueryParamSelect    = "select"
	QueryParamLimit     = "limit"
	QuerySelectAll      = "*"
	QueryEqualityFormat = "eq.%s"
)
