package documents

import (
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// RenderAppointmentList produces the "Citas" workbook: a bold header row and
// one row per appointment in input order, every cell written as display text.
func (r *documentRenderer) RenderAppointmentList(appointments []clinic_dto.Appointment) ([]byte, error) {
	r.Log.Info("documentRenderer.RenderAppointmentList called",
		zap.Int(constvars.LoggingRowCountKey, len(appointments)),
	)

	f := excelize.NewFile()
	defer f.Close()

	sheet := constvars.ExcelSheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, exceptions.ErrRenderDocument(err, "citas")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, exceptions.ErrRenderDocument(err, "citas")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, exceptions.ErrRenderDocument(err, "citas")
	}

	columnWidths := make([]int, len(constvars.ExcelColumns))
	for i, column := range constvars.ExcelColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, exceptions.ErrRenderDocument(err, "citas")
		}
		if err := f.SetCellStr(sheet, cell, column); err != nil {
			return nil, exceptions.ErrRenderDocument(err, "citas")
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, exceptions.ErrRenderDocument(err, "citas")
		}
		columnWidths[i] = len([]rune(column))
	}

	for rowIndex, appointment := range appointments {
		values := spreadsheetRow(&appointment)
		for colIndex, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err != nil {
				return nil, exceptions.ErrRenderDocument(err, "citas")
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return nil, exceptions.ErrRenderDocument(err, "citas")
			}
			if width := len([]rune(value)); width > columnWidths[colIndex] {
				columnWidths[colIndex] = width
			}
		}
	}

	// Columns sized to the longest cell text after all rows are written.
	for i, width := range columnWidths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, exceptions.ErrRenderDocument(err, "citas")
		}
		if err := f.SetColWidth(sheet, column, column, float64(width)+2); err != nil {
			return nil, exceptions.ErrRenderDocument(err, "citas")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		r.Log.Error("documentRenderer.RenderAppointmentList error serializing workbook",
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderDocument(err, "citas")
	}

	r.Log.Info("documentRenderer.RenderAppointmentList succeeded",
		zap.Int(constvars.LoggingRowCountKey, len(appointments)),
		zap.Int(constvars.LoggingDocumentSizeKey, buf.Len()),
	)
	return buf.Bytes(), nil
}

func spreadsheetRow(appointment *clinic_dto.Appointment) []string {
	return []string{
		formatAppointmentID(appointment.ID),
		formatDateTime(appointment.AppointmentTime),
		constvars.ExcelDoctorPrefix + doctorFullName(appointment),
		patientFullName(appointment),
		specialtyName(appointment, ""),
	}
}
