package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTicketLines(t *testing.T) {
	t.Run("Fully Resolved Appointment", func(t *testing.T) {
		lines := ticketLines(sampleAppointment())

		assert.Equal(t, []string{
			"Ticket #42",
			"Fecha y hora: 01/03/2024 02:30 PM",
			"Doctor: Dr. Carlos Ruiz",
			"Paciente: Juana Pérez",
			"Especialidad: Pediatría",
		}, lines)
	})

	t.Run("Unresolved References Leave Blanks", func(t *testing.T) {
		appointment := sampleAppointment()
		appointment.AppointmentTime = nil
		appointment.Patient = nil
		appointment.Doctor = nil

		lines := ticketLines(appointment)

		assert.Equal(t, "Fecha y hora: N/A", lines[1])
		assert.Equal(t, "Doctor: Dr. ", lines[2])
		assert.Equal(t, "Paciente: ", lines[3])
		assert.Equal(t, "Especialidad: ", lines[4])
	})
}

func TestRenderTicket(t *testing.T) {
	renderer := NewDocumentRenderer(zap.NewNop())

	payload, err := renderer.RenderTicket(sampleAppointment())

	assert.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}
