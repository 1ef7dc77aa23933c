package prescriptions

import (
	"context"
	"monteluz-service/internal/app/services/shared/supabase"
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"
	"monteluz-service/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	SupabaseClient supabase.SupabaseClient
	Log            *zap.Logger
}

func NewPrescriptionUsecase(supabaseClient supabase.SupabaseClient, logger *zap.Logger) PrescriptionUsecase {
	return &prescriptionUsecase{
		SupabaseClient: supabaseClient,
		Log:            logger,
	}
}

func (uc *prescriptionUsecase) GetPrescriptionIDByAppointment(ctx context.Context, appointmentID int64) *int64 {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptionIDByAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	opts := &supabase.QueryOptions{
		Select: constvars.FieldID,
		Limit:  1,
	}
	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourcePrescriptions, constvars.FieldAppointmentID, strconv.FormatInt(appointmentID, 10), opts)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.GetPrescriptionIDByAppointment lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	prescriptionID, ok := utils.MapInt64Value(rows[0], constvars.FieldID)
	if !ok {
		uc.Log.Warn("prescriptionUsecase.GetPrescriptionIDByAppointment malformed row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil
	}

	uc.Log.Info("prescriptionUsecase.GetPrescriptionIDByAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return &prescriptionID
}

func (uc *prescriptionUsecase) GetPrescriptionItems(ctx context.Context, prescriptionID int64) ([]clinic_dto.PrescriptionItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptionItems called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourcePrescriptionItems, constvars.FieldPrescriptionID, strconv.FormatInt(prescriptionID, 10), nil)
	if err != nil {
		return nil, exceptions.ErrAggregateResource(err, constvars.ResourcePrescriptionItems)
	}

	items := make([]clinic_dto.PrescriptionItem, 0, len(rows))
	for _, row := range rows {
		item := clinic_dto.PrescriptionItem{
			PrescriptionID: prescriptionID,
			Medication:     utils.MapStringPtr(row, constvars.FieldMedication),
			Dosage:         utils.MapStringPtr(row, constvars.FieldDosage),
			Frequency:      utils.MapStringPtr(row, constvars.FieldFrequency),
			Duration:       utils.MapStringPtr(row, constvars.FieldDuration),
			Notes:          utils.MapStringPtr(row, constvars.FieldNotes),
		}
		if itemID, ok := utils.MapInt64Value(row, constvars.FieldID); ok {
			item.ID = itemID
		}
		items = append(items, item)
	}

	uc.Log.Info("prescriptionUsecase.GetPrescriptionItems succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.Int(constvars.LoggingItemCountKey, len(items)),
	)
	return items, nil
}
