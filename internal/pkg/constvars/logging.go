package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResourceKey       = "resource"
	LoggingSupabaseUrlKey    = "supabase_url"
	LoggingRowCountKey       = "row_count"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingSpecialtyIDKey    = "specialty_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingItemCountKey      = "item_count"
	LoggingDocumentSizeKey   = "document_size"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
