package documents

import (
	"bytes"
	"fmt"
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"

	"github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

// RenderPrescription builds the receta document: centered header, a 3x2
// information table, diagnosis, the medication table (or a fallback line when
// the prescription has no items) and the signature block. Items travel as a
// separate argument so item fetching can be skipped or reused independently
// of the appointment composite.
func (r *documentRenderer) RenderPrescription(appointment *clinic_dto.Appointment, items []clinic_dto.PrescriptionItem) ([]byte, error) {
	r.Log.Info("documentRenderer.RenderPrescription called",
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Int(constvars.LoggingItemCountKey, len(items)),
	)

	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(constvars.RecetaTitle).Size("36").Bold()

	subtitle := w.AddParagraph().Justification("center")
	subtitle.AddText(constvars.RecetaSubtitle).Size("28")

	w.AddParagraph()

	infoTable := w.AddTable(3, 2, 0, nil)
	setTableCellText(infoTable, 0, 0, constvars.RecetaPatientLabel+patientDisplay(appointment))
	setTableCellText(infoTable, 0, 1, constvars.RecetaDoctorLabel+doctorDisplay(appointment))
	setTableCellText(infoTable, 1, 0, constvars.RecetaDateLabel+formatDate(appointment.AppointmentTime))
	setTableCellText(infoTable, 1, 1, constvars.RecetaSpecialtyLabel+specialtyName(appointment, constvars.RecetaDefaultSpecialty))
	setTableCellText(infoTable, 2, 0, constvars.RecetaLicenseLabel+doctorLicense(appointment))
	setTableCellText(infoTable, 2, 1, constvars.RecetaAppointmentLabel+formatAppointmentID(appointment.ID))

	w.AddParagraph()

	diagLabel := w.AddParagraph()
	diagLabel.AddText(constvars.RecetaDiagnosisLabel).Size("24").Bold()

	w.AddParagraph().AddText(diagnosisText(appointment))

	w.AddParagraph()

	rxLabel := w.AddParagraph()
	rxLabel.AddText(constvars.RecetaPrescriptionLabel).Size("24").Bold()

	if len(items) > 0 {
		medTable := w.AddTable(len(items)+1, len(constvars.RecetaMedColumns), 0, nil)
		for colIndex, column := range constvars.RecetaMedColumns {
			cell := medTable.TableRows[0].TableCells[colIndex]
			cell.AddParagraph().AddText(column).Bold().Shade("clear", "auto", constvars.RecetaHeaderShade)
		}
		for itemIndex, item := range items {
			row := medTable.TableRows[itemIndex+1]
			values := prescriptionItemRow(&item)
			for colIndex, value := range values {
				row.TableCells[colIndex].AddParagraph().AddText(value)
			}
		}
	} else {
		w.AddParagraph().AddText(constvars.RecetaNoMedications)
	}

	w.AddParagraph()
	w.AddParagraph()

	footer := w.AddParagraph().Justification("center")
	footer.AddText(constvars.RecetaSignatureLine)

	signature := w.AddParagraph().Justification("center")
	signature.AddText(constvars.RecetaSignatureLabel).Size("20")

	signatureName := w.AddParagraph().Justification("center")
	signatureName.AddText(doctorDisplay(appointment)).Size("20")

	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	if err != nil {
		r.Log.Error("documentRenderer.RenderPrescription error serializing document",
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderDocument(err, "receta")
	}

	r.Log.Info("documentRenderer.RenderPrescription succeeded",
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Int(constvars.LoggingDocumentSizeKey, buf.Len()),
	)
	return buf.Bytes(), nil
}

func setTableCellText(table *docx.Table, row, col int, text string) {
	table.TableRows[row].TableCells[col].AddParagraph().AddText(text)
}

func doctorLicense(appointment *clinic_dto.Appointment) string {
	if appointment.Doctor == nil {
		return constvars.RecetaNotAvailable
	}
	return orNotAvailable(appointment.Doctor.LicenseNumber)
}

func diagnosisText(appointment *clinic_dto.Appointment) string {
	if appointment.Diagnosis == nil || *appointment.Diagnosis == "" {
		return constvars.RecetaNoDiagnosis
	}
	return *appointment.Diagnosis
}

func prescriptionItemRow(item *clinic_dto.PrescriptionItem) []string {
	return []string{
		orDash(item.Medication),
		orDash(item.Dosage),
		orDash(item.Frequency),
		orDash(item.Duration),
		orDash(item.Notes),
	}
}

// RecetaFilename names the download for a given appointment.
func RecetaFilename(appointmentID int64) string {
	return fmt.Sprintf(constvars.RecetaFilenameFormat, appointmentID)
}
