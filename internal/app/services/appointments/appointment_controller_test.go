package appointments

import (
	"context"
	"errors"
	"monteluz-service/internal/pkg/clinic_dto"
	"monteluz-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAppointmentUsecase struct {
	appointment  *clinic_dto.Appointment
	appointments []clinic_dto.Appointment
	err          error
}

func (s *stubAppointmentUsecase) GetAppointmentWithDetails(ctx context.Context, appointmentID int64) (*clinic_dto.Appointment, error) {
	return s.appointment, s.err
}

func (s *stubAppointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error) {
	return s.appointments, s.err
}

type stubDocumentRenderer struct {
	payload []byte
	err     error
}

func (s *stubDocumentRenderer) RenderTicket(appointment *clinic_dto.Appointment) ([]byte, error) {
	return s.payload, s.err
}

func (s *stubDocumentRenderer) RenderAppointmentList(appointments []clinic_dto.Appointment) ([]byte, error) {
	return s.payload, s.err
}

func (s *stubDocumentRenderer) RenderPrescription(appointment *clinic_dto.Appointment, items []clinic_dto.PrescriptionItem) ([]byte, error) {
	return s.payload, s.err
}

func newTicketRouter(usecase AppointmentUsecase, renderer *stubDocumentRenderer) *chi.Mux {
	controller := NewAppointmentController(usecase, renderer, zap.NewNop())
	router := chi.NewRouter()
	router.Get("/ticket/{appointment_id}", controller.PrintTicket)
	router.Get("/excel/{patient_id}", controller.ExportAppointmentList)
	return router
}

func TestPrintTicket(t *testing.T) {
	t.Run("Streams PDF Inline", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &clinic_dto.Appointment{ID: 42, PatientID: "pid-1", DoctorID: "did-1"}}
		renderer := &stubDocumentRenderer{payload: []byte("%PDF-1.4 fake")}
		router := newTicketRouter(usecase, renderer)

		req := httptest.NewRequest("GET", "/ticket/42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Equal(t, "inline; filename=ticket.pdf", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "13", rr.Header().Get("Content-Length"))
		assert.Equal(t, "%PDF-1.4 fake", rr.Body.String())
	})

	t.Run("Non Numeric ID Is Bad Request", func(t *testing.T) {
		router := newTicketRouter(&stubAppointmentUsecase{}, &stubDocumentRenderer{})

		req := httptest.NewRequest("GET", "/ticket/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Unknown Appointment Is Not Found With Empty Body", func(t *testing.T) {
		router := newTicketRouter(&stubAppointmentUsecase{}, &stubDocumentRenderer{})

		req := httptest.NewRequest("GET", "/ticket/9999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Aggregation Failure Is Internal Error", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrAggregateResource(errors.New("timeout"), "profiles")}
		router := newTicketRouter(usecase, &stubDocumentRenderer{})

		req := httptest.NewRequest("GET", "/ticket/42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Render Failure Is Internal Error", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &clinic_dto.Appointment{ID: 42}}
		renderer := &stubDocumentRenderer{err: exceptions.ErrRenderDocument(errors.New("font missing"), "ticket")}
		router := newTicketRouter(usecase, renderer)

		req := httptest.NewRequest("GET", "/ticket/42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestExportAppointmentList(t *testing.T) {
	t.Run("Streams Workbook Attachment", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointments: []clinic_dto.Appointment{{ID: 42}}}
		renderer := &stubDocumentRenderer{payload: []byte("PK fake workbook")}
		router := newTicketRouter(usecase, renderer)

		req := httptest.NewRequest("GET", "/excel/pid-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=citas.xlsx", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK fake workbook", rr.Body.String())
	})

	t.Run("Empty List Still Streams Workbook", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointments: []clinic_dto.Appointment{}}
		renderer := &stubDocumentRenderer{payload: []byte("PK header only")}
		router := newTicketRouter(usecase, renderer)

		req := httptest.NewRequest("GET", "/excel/pid-nobody", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "PK header only", rr.Body.String())
	})

	t.Run("Retrieval Failure Is Internal Error", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrAggregateResource(errors.New("timeout"), "appointments")}
		router := newTicketRouter(usecase, &stubDocumentRenderer{})

		req := httptest.NewRequest("GET", "/excel/pid-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
