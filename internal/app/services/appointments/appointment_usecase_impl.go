package appointments

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

type appointmentUsecase struct {
	SupabaseClient supabase.SupabaseClient
	Log            *zap.Logger
}

func NewAppointmentUsecase(supabaseClient supabase.SupabaseClient, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		SupabaseClient: supabaseClient,
		Log:            logger,
	}
}

func (uc *appointmentUsecase) GetAppointmentWithDetails(ctx context.Context, appointmentID int64) (*clinic_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentWithDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourceAppointments, constvars.FieldID, strconv.FormatInt(appointmentID, 10), nil)
	if err != nil {
		return nil, exceptions.ErrAggregateResource(err, constvars.ResourceAppointments)
	}
	if len(rows) == 0 {
		uc.Log.Warn("appointmentUsecase.GetAppointmentWithDetails appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, nil
	}

	appointment, err := uc.mapAppointmentRow(rows[0])
	if err != nil {
		return nil, err
	}

	err = uc.enrichAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.GetAppointmentWithDetails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourceAppointments, constvars.FieldPatientID, patientID, nil)
	if err != nil {
		return nil, exceptions.ErrAggregateResource(err, constvars.ResourceAppointments)
	}

	appointments := make([]clinic_dto.Appointment, 0, len(rows))
	for _, row := range rows {
		appointment, err := uc.mapAppointmentRow(row)
		if err != nil {
			return nil, err
		}
		err = uc.enrichAppointment(ctx, appointment)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appointment)
	}

	uc.Log.Info("appointmentUsecase.GetAppointmentsByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingRowCountKey, len(appointments)),
	)
	return appointments, nil
}

// mapAppointmentRow parses one appointments row. The id and the two profile
// references are mandatory; everything else stays nil when absent.
func (uc *appointmentUsecase) mapAppointmentRow(row map[string]interface{}) (*clinic_dto.Appointment, error) {
	id, ok := utils.MapInt64Value(row, constvars.FieldID)
	if !ok {
		return nil, exceptions.ErrMissingMandatoryField(constvars.ResourceAppointments, constvars.FieldID)
	}
	patientID, ok := utils.MapStringValue(row, constvars.FieldPatientID)
	if !ok {
		return nil, exceptions.ErrMissingMandatoryField(constvars.ResourceAppointments, constvars.FieldPatientID)
	}
	doctorID, ok := utils.MapStringValue(row, constvars.FieldDoctorID)
	if !ok {
		return nil, exceptions.ErrMissingMandatoryField(constvars.ResourceAppointments, constvars.FieldDoctorID)
	}

	appointment := &clinic_dto.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		Status:    utils.MapStringPtr(row, constvars.FieldStatus),
		Diagnosis: utils.MapStringPtr(row, constvars.FieldDiagnosis),
		Rating:    utils.MapIntPtr(row, constvars.FieldRating),
		Feedback:  utils.MapStringPtr(row, constvars.FieldFeedback),
	}

	if raw := utils.MapStringPtr(row, constvars.FieldAppointmentTime); raw != nil {
		parsed, err := utils.ParseTimestamp(*raw)
		if err != nil {
			return nil, exceptions.ErrAggregateResource(err, constvars.ResourceAppointments)
		}
		appointment.AppointmentTime = &parsed
	}

	return appointment, nil
}

// enrichAppointment resolves the referenced profiles with the soft-missing
// policy: an absent row only logs a warning, a transport or decode failure
// aborts the whole aggregation.
func (uc *appointmentUsecase) enrichAppointment(ctx context.Context, appointment *clinic_dto.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, _, err := uc.fetchProfile(ctx, appointment.PatientID)
	if err != nil {
		return exceptions.ErrAggregateResource(err, constvars.ResourceProfiles)
	}
	if patient == nil {
		uc.Log.Warn("appointmentUsecase.enrichAppointment patient profile not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
		)
	}
	appointment.Patient = patient

	doctor, specialtyID, err := uc.fetchProfile(ctx, appointment.DoctorID)
	if err != nil {
		return exceptions.ErrAggregateResource(err, constvars.ResourceProfiles)
	}
	if doctor == nil {
		uc.Log.Warn("appointmentUsecase.enrichAppointment doctor profile not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
		)
	}
	appointment.Doctor = doctor

	if doctor != nil && specialtyID != nil {
		specialty, err := uc.fetchSpecialty(ctx, *specialtyID)
		if err != nil {
			return exceptions.ErrAggregateResource(err, constvars.ResourceSpecialties)
		}
		doctor.Specialty = specialty
	}

	return nil
}

// fetchProfile returns the profile and its raw specialty reference, or
// (nil, nil, nil) when the row does not exist.
func (uc *appointmentUsecase) fetchProfile(ctx context.Context, profileID string) (*clinic_dto.Profile, *int, error) {
	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourceProfiles, constvars.FieldID, profileID, nil)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	row := rows[0]
	id, _ := utils.MapStringValue(row, constvars.FieldID)
	fullName, _ := utils.MapStringValue(row, constvars.FieldFullName)

	profile := &clinic_dto.Profile{
		ID:            id,
		FullName:      fullName,
		Email:         utils.MapStringPtr(row, constvars.FieldEmail),
		Role:          utils.MapStringPtr(row, constvars.FieldRole),
		LicenseNumber: utils.MapStringPtr(row, constvars.FieldLicenseNumber),
	}
	return profile, utils.MapIntPtr(row, constvars.FieldSpecialtyID), nil
}

// fetchSpecialty tolerates a dangling reference: an empty result is nil, not
// an error.
func (uc *appointmentUsecase) fetchSpecialty(ctx context.Context, specialtyID int) (*clinic_dto.Specialty, error) {
	rows, err := uc.SupabaseClient.Select(ctx, constvars.ResourceSpecialties, constvars.FieldID, strconv.Itoa(specialtyID), nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	id, _ := utils.MapInt64Value(row, constvars.FieldID)
	name, _ := utils.MapStringValue(row, constvars.FieldName)

	return &clinic_dto.Specialty{
		ID:   int(id),
		Name: name,
	}, nil
}
