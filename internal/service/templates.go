package service

import (
	"fmt"

	"healthconnect/internal/domain/entity"
)

// Template builders are pure functions from a domain record to a message
// body: HTML for email, plain text for SMS.

func AppointmentEmail(a *entity.Appointment) (subject, body string) {
	subject = "Appointment Confirmation - HealthConnect"
	body = fmt.Sprintf(`<h2>Appointment Confirmed</h2>
<p>Dear %s,</p>
<p>Your appointment has been booked successfully.</p>
<ul>
  <li><strong>Doctor:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
</ul>
<p>Please arrive 10 minutes early. Thank you for choosing HealthConnect.</p>`,
		a.Name, a.Doctor, a.Date, a.TimeSlot)
	return subject, body
}

func AppointmentSMS(a *entity.Appointment) string {
	return fmt.Sprintf("HealthConnect: appointment confirmed with %s on %s at %s.",
		a.Doctor, a.Date, a.TimeSlot)
}

func ConsultationEmail(c *entity.Consultation) (subject, body string) {
	subject = fmt.Sprintf("Consultation Request %s - HealthConnect", c.ConsultationID)
	preferred := ""
	if c.PreferredDate != "" {
		preferred = fmt.Sprintf("\n  <li><strong>Preferred date:</strong> %s</li>", c.PreferredDate)
	}
	body = fmt.Sprintf(`<h2>Consultation Request Received</h2>
<p>Dear %s,</p>
<p>Your %s consultation request has been received and is pending confirmation.</p>
<ul>
  <li><strong>Consultation ID:</strong> %s</li>
  <li><strong>Amount:</strong> %d</li>%s
</ul>
<p>Our team will reach out shortly. Thank you for choosing HealthConnect.</p>`,
		c.PatientName, c.Type, c.ConsultationID, c.Amount, preferred)
	return subject, body
}

func ConsultationSMS(c *entity.Consultation) string {
	return fmt.Sprintf("HealthConnect: %s consultation %s received (amount %d). Status: %s.",
		c.Type, c.ConsultationID, c.Amount, c.Status)
}
