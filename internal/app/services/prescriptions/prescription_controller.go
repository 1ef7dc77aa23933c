package prescriptions

import (
	"monteluz-service/internal/app/services/appointments"
	"monteluz-service/internal/app/services/shared/documents"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/dto/requests"
	"monteluz-service/internal/pkg/exceptions"
	"monteluz-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	AppointmentUsecase  appointments.AppointmentUsecase
	PrescriptionUsecase PrescriptionUsecase
	DocumentRenderer    documents.DocumentRenderer
	Log                 *zap.Logger
}

func NewPrescriptionController(
	appointmentUsecase appointments.AppointmentUsecase,
	prescriptionUsecase PrescriptionUsecase,
	documentRenderer documents.DocumentRenderer,
	logger *zap.Logger,
) *PrescriptionController {
	return &PrescriptionController{
		AppointmentUsecase:  appointmentUsecase,
		PrescriptionUsecase: prescriptionUsecase,
		DocumentRenderer:    documentRenderer,
		Log:                 logger,
	}
}

func (ctrl *PrescriptionController) ExportPrescription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appointmentID, err := strconv.ParseInt(chi.URLParam(r, "appointment_id"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "appointment_id"))
		return
	}

	request := &requests.PrescriptionExport{AppointmentID: appointmentID}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := ctrl.AppointmentUsecase.GetAppointmentWithDetails(ctx, request.AppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if appointment == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAppointmentNotFound(request.AppointmentID))
		return
	}

	prescriptionID := ctrl.PrescriptionUsecase.GetPrescriptionIDByAppointment(ctx, request.AppointmentID)
	if prescriptionID == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPrescriptionNotFound(request.AppointmentID))
		return
	}

	items, err := ctrl.PrescriptionUsecase.GetPrescriptionItems(ctx, *prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	payload, err := ctrl.DocumentRenderer.RenderPrescription(appointment, items)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	disposition := "attachment; filename=" + documents.RecetaFilename(request.AppointmentID)
	utils.BuildDocumentResponse(w, constvars.MIMEOctetStream, disposition, payload)
}
