package routers

import (
	"monteluz-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Get("/ticket/{appointment_id}", appointmentController.PrintTicket)
	router.Get("/excel/{patient_id}", appointmentController.ExportAppointmentList)
}
