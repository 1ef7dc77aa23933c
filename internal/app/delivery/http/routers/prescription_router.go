package routers

import (
	"monteluz-service/internal/app/services/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, prescriptionController *prescriptions.PrescriptionController) {
	router.Get("/{appointment_id}/export-pdf", prescriptionController.ExportPrescription)
}
