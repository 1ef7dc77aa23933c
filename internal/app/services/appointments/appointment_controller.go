package appointments

import (
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

type AppointmentController struct {
	AppointmentUsecase AppointmentUsecase
	DocumentRenderer   documents.DocumentRenderer
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase AppointmentUsecase, documentRenderer documents.DocumentRenderer, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		DocumentRenderer:   documentRenderer,
		Log:                logger,
	}
}

func (ctrl *AppointmentController) PrintTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appointmentID, err := strconv.ParseInt(chi.URLParam(r, "appointment_id"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "appointment_id"))
		return
	}

	request := &requests.TicketExport{AppointmentID: appointmentID}
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

	payload, err := ctrl.DocumentRenderer.RenderTicket(appointment)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildDocumentResponse(w, constvars.MIMEApplicationPDF, constvars.TicketDisposition, payload)
}

func (ctrl *AppointmentController) ExportAppointmentList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request := &requests.AppointmentListExport{PatientID: chi.URLParam(r, "patient_id")}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointments, err := ctrl.AppointmentUsecase.GetAppointmentsByPatient(ctx, request.PatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	payload, err := ctrl.DocumentRenderer.RenderAppointmentList(appointments)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildDocumentResponse(w, constvars.MIMEApplicationXLSX, constvars.ExcelDisposition, payload)
}
