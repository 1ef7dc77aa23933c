package requests

type TicketExport struct {
	AppointmentID int64 `validate:"required,gt=0"`
}

type AppointmentListExport struct {
	PatientID string `validate:"required"`
}

type PrescriptionExport struct {
	AppointmentID int64 `validate:"required,gt=0"`
}
