package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"gt":  true,
	"gte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientResourceNotFound              = "resource not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed              = "request validation failed"
	ErrDevURLParamIDValidationFailed    = "failed to validate URL param %s"
	ErrDevCreateHTTPRequest             = "failed to create HTTP request"
	ErrDevSendHTTPRequest               = "failed to send HTTP request"
	ErrDevSupabaseGetResource           = "failed to get %s from supabase"
	ErrDevSupabaseDecodeResource        = "failed to decode supabase %s response"
	ErrDevSupabaseMissingMandatoryField = "supabase %s row is missing mandatory field %s"
	ErrDevAggregateResource             = "failed to aggregate %s data"
	ErrDevAppointmentNotFound           = "appointment %d not found"
	ErrDevPrescriptionNotFound          = "no prescription found for appointment %d"
	ErrDevRenderDocument                = "failed to render %s document"
	ErrDevInvalidInput                  = "invalid input"
)

const ResponseUnknown = "unknown"
