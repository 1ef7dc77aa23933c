package documents

import (
	"bytes"
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// RenderTicket lays out a single appointment on one 600x400 pt page: the
// ticket number at 30 pt, then date, doctor, patient and specialty at 24 pt
// with a fixed 30 pt leading. Long lines are written as-is, no wrapping.
func (r *documentRenderer) RenderTicket(appointment *clinic_dto.Appointment) ([]byte, error) {
	r.Log.Info("documentRenderer.RenderTicket called",
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: constvars.TicketPageWidth,
			Ht: constvars.TicketPageHeight,
		},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	lines := ticketLines(appointment)

	y := float64(constvars.TicketMarginTop)
	pdf.SetFont(constvars.TicketFontFamily, "", constvars.TicketTitleSize)
	pdf.Text(constvars.TicketMarginLeft, y, tr(lines[0]))

	pdf.SetFont(constvars.TicketFontFamily, "", constvars.TicketBodySize)
	for _, line := range lines[1:] {
		y += constvars.TicketLeading
		pdf.Text(constvars.TicketMarginLeft, y, tr(line))
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		r.Log.Error("documentRenderer.RenderTicket error serializing PDF",
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderDocument(err, "ticket")
	}

	r.Log.Info("documentRenderer.RenderTicket succeeded",
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Int(constvars.LoggingDocumentSizeKey, buf.Len()),
	)
	return buf.Bytes(), nil
}

func ticketLines(appointment *clinic_dto.Appointment) []string {
	return []string{
		constvars.TicketLinePrefix + formatAppointmentID(appointment.ID),
		constvars.TicketDatePrefix + formatDateTime(appointment.AppointmentTime),
		constvars.TicketDoctorPrefix + doctorFullName(appointment),
		constvars.TicketPatientPrefix + patientFullName(appointment),
		constvars.TicketSpecialtyPrefix + specialtyName(appointment, ""),
	}
}
