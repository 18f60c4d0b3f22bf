package service

import (
	"testing"

	"healthconnect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentEmail(t *testing.T) {
	subject, body := AppointmentEmail(&entity.Appointment{
		Name:     "Jane",
		Doctor:   "Dr. Sharma",
		Date:     "2025-01-10",
		TimeSlot: "10:00",
	})

	assert.Contains(t, subject, "Appointment Confirmation")
	assert.Contains(t, body, "Jane")
	assert.Contains(t, body, "Dr. Sharma")
	assert.Contains(t, body, "2025-01-10")
	assert.Contains(t, body, "10:00")
}

func TestAppointmentSMS(t *testing.T) {
	body := AppointmentSMS(&entity.Appointment{
		Doctor:   "Dr. Sharma",
		Date:     "2025-01-10",
		TimeSlot: "10:00",
	})

	assert.Contains(t, body, "Dr. Sharma")
	assert.Contains(t, body, "2025-01-10")
	assert.NotContains(t, body, "<") // SMS stays plain text
}

func TestConsultationEmail_WithPreferredDate(t *testing.T) {
	subject, body := ConsultationEmail(&entity.Consultation{
		ConsultationID: "CONS-20250110-ABC123",
		PatientName:    "John",
		Type:           entity.ConsultationTypeScheduled,
		Amount:         299,
		PreferredDate:  "2025-02-01",
	})

	assert.Contains(t, subject, "CONS-20250110-ABC123")
	assert.Contains(t, body, "Preferred date")
	assert.Contains(t, body, "2025-02-01")
	assert.Contains(t, body, "299")
}

func TestConsultationEmail_WithoutPreferredDate(t *testing.T) {
	_, body := ConsultationEmail(&entity.Consultation{
		ConsultationID: "CONS-20250110-ABC123",
		PatientName:    "John",
		Type:           entity.ConsultationTypeInstant,
		Amount:         499,
	})

	assert.NotContains(t, body, "Preferred date")
}

func TestConsultationSMS(t *testing.T) {
	body := ConsultationSMS(&entity.Consultation{
		ConsultationID: "CONS-20250110-ABC123",
		Type:           entity.ConsultationTypeEmergency,
		Amount:         999,
		Status:         entity.ConsultationStatusPending,
	})

	assert.Contains(t, body, "emergency")
	assert.Contains(t, body, "999")
	assert.Contains(t, body, "pending")
}
