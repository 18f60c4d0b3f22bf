package service

import (
	"context"
	"errors"

	"healthconnect/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// NotificationResult reports which best-effort channels delivered. A false
// flag never fails the booking that triggered it.
type NotificationResult struct {
	EmailSent bool
	SMSSent   bool
}

// Message builds the human-readable confirmation line for a given channel
// combination. "booking confirmed" holds regardless of delivery outcome.
func (r NotificationResult) Message() string {
	switch {
	case r.EmailSent && r.SMSSent:
		return "Booking confirmed. Confirmation sent via email and SMS."
	case r.EmailSent:
		return "Booking confirmed. Confirmation sent via email."
	case r.SMSSent:
		return "Booking confirmed. Confirmation sent via SMS."
	default:
		return "Booking confirmed."
	}
}

// Notifier dispatches booking confirmations over email and SMS. Each channel
// gets one attempt; failures are logged and reported as flags, never returned.
type Notifier struct {
	email EmailSender
	sms   SMSSender
	log   *logrus.Logger
}

func NewNotifier(email EmailSender, sms SMSSender, log *logrus.Logger) *Notifier {
	return &Notifier{
		email: email,
		sms:   sms,
		log:   log,
	}
}

func (n *Notifier) NotifyAppointment(ctx context.Context, a *entity.Appointment) NotificationResult {
	subject, body := AppointmentEmail(a)
	return NotificationResult{
		EmailSent: n.sendEmail(ctx, a.Email, subject, body),
		SMSSent:   n.sendSMS(ctx, a.Phone, AppointmentSMS(a)),
	}
}

func (n *Notifier) NotifyConsultation(ctx context.Context, c *entity.Consultation) NotificationResult {
	subject, body := ConsultationEmail(c)
	return NotificationResult{
		EmailSent: n.sendEmail(ctx, c.PatientEmail, subject, body),
		SMSSent:   n.sendSMS(ctx, c.PatientPhone, ConsultationSMS(c)),
	}
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) bool {
	err := n.email.Send(ctx, to, subject, body)
	if err == nil {
		return true
	}
	if errors.Is(err, ErrNotConfigured) {
		n.log.Debug("Email transport not configured, skipping delivery")
	} else {
		n.log.Warnf("Failed to send email to %s: %+v", to, err)
	}
	return false
}

func (n *Notifier) sendSMS(ctx context.Context, to, body string) bool {
	err := n.sms.Send(ctx, to, body)
	if err == nil {
		return true
	}
	if errors.Is(err, ErrNotConfigured) {
		n.log.Debug("SMS transport not configured, skipping delivery")
	} else {
		n.log.Warnf("Failed to send SMS to %s: %+v", to, err)
	}
	return false
}
