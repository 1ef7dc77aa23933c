package constvars

// Display layouts shared by every renderer. The original system prints
// timestamps as dd/MM/yyyy hh:mm AM|PM.
const (
	DocumentDateTimeLayout = "02/01/2006 03:04 PM"
	DocumentDateLayout     = "02/01/2006"
)

// Ticket PDF layout, in points.
const (
	TicketPageWidth       = 600
	TicketPageHeight      = 400
	TicketMarginLeft      = 50
	TicketMarginTop       = 50
	TicketLeading         = 30
	TicketTitleSize       = 30
	TicketBodySize        = 24
	TicketFontFamily      = "Helvetica"
	TicketLinePrefix      = "Ticket #"
	TicketDatePrefix      = "Fecha y hora: "
	TicketDoctorPrefix    = "Doctor: Dr. "
	TicketPatientPrefix   = "Paciente: "
	TicketSpecialtyPrefix = "Especialidad: "
)

// Citas spreadsheet.
const ExcelSheetName = "Citas"

var ExcelColumns = []string{"ID", "Fecha y hora", "Doctor", "Paciente", "Especialidad"}

const ExcelDoctorPrefix = "Dr. "

// Receta document.
const (
	RecetaTitle             = "Clínica Monteluz"
	RecetaSubtitle          = "Receta Médica"
	RecetaPatientLabel      = "Paciente: "
	RecetaDoctorLabel       = "Doctor: "
	RecetaDateLabel         = "Fecha: "
	RecetaSpecialtyLabel    = "Especialidad: "
	RecetaLicenseLabel      = "Lic. Médica: "
	RecetaAppointmentLabel  = "ID Cita: "
	RecetaDiagnosisLabel    = "Diagnóstico:"
	RecetaPrescriptionLabel = "℞ Prescripción:"
	RecetaNoDiagnosis       = "No especificado"
	RecetaNoMedications     = "Sin medicamentos prescritos."
	RecetaDefaultSpecialty  = "General"
	RecetaNotAvailable      = "N/A"
	RecetaEmptyField        = "-"
	RecetaSignatureLine     = "___________________________"
	RecetaSignatureLabel    = "Firma del Médico"
	RecetaHeaderShade       = "E0E0E0"
)

var RecetaMedColumns = []string{"Medicamento", "Dosis", "Frecuencia", "Duración", "Notas"}

const (
	PatientIDFallbackFormat = "Patient ID: %s"
	DoctorIDFallbackFormat  = "Doctor ID: %s"
)

// Download headers.
const (
	TicketDisposition    = "inline; filename=ticket.pdf"
	ExcelDisposition     = "attachment; filename=citas.xlsx"
	RecetaFilenameFormat = "receta-monteluz-%d.docx"
)
