package usecase

import (
	"context"
	"errors"
	"testing"

	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func janeRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		Name:     "Jane",
		Email:    "jane@x.com",
		Phone:    "+15551234567",
		Date:     "2025-01-10",
		TimeSlot: "10:00",
		Doctor:   "Dr. Sharma",
	}
}

func newAppointmentUsecase(repo *MockAppointmentRepository, email *stubEmailSender, sms *stubSMSSender) AppointmentUsecase {
	log := logrus.New()
	notifier := service.NewNotifier(email, sms, log)
	return NewAppointmentUsecase(log, repo, notifier)
}

func TestBookAppointment_Success(t *testing.T) {
	repo := &MockAppointmentRepository{}
	u := newAppointmentUsecase(repo, &stubEmailSender{}, &stubSMSSender{})

	result, err := u.BookAppointment(context.Background(), janeRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Jane", result.Appointment.Name)
	assert.True(t, result.Notifications.EmailSent)
	assert.True(t, result.Notifications.SMSSent)
	assert.Equal(t, "Booking confirmed. Confirmation sent via email and SMS.", result.Message)
	assert.Equal(t, int32(1), repo.CreateCallCount)
}

func TestBookAppointment_NormalizesFields(t *testing.T) {
	repo := &MockAppointmentRepository{}
	u := newAppointmentUsecase(repo, &stubEmailSender{}, &stubSMSSender{})

	req := janeRequest()
	req.Name = "  Jane  "
	req.Email = " Jane@X.com "

	result, err := u.BookAppointment(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Jane", result.Appointment.Name)
	assert.Equal(t, "jane@x.com", result.Appointment.Email)
	assert.Equal(t, "jane@x.com", repo.Created[0].Email)
}

func TestBookAppointment_TransportFailureNeverPreventsPersistence(t *testing.T) {
	repo := &MockAppointmentRepository{}
	u := newAppointmentUsecase(repo,
		&stubEmailSender{err: errors.New("smtp down")},
		&stubSMSSender{err: errors.New("twilio 503")},
	)

	result, err := u.BookAppointment(context.Background(), janeRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Notifications.EmailSent)
	assert.False(t, result.Notifications.SMSSent)
	assert.Equal(t, "Booking confirmed.", result.Message)
	// The record exists in storage regardless of delivery flags.
	assert.Len(t, repo.Created, 1)
}

func TestBookAppointment_PersistenceFailureIsFatalAndSkipsNotification(t *testing.T) {
	repo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			return errors.New("write concern error")
		},
	}
	email := &stubEmailSender{}
	sms := &stubSMSSender{}
	u := newAppointmentUsecase(repo, email, sms)

	result, err := u.BookAppointment(context.Background(), janeRequest())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, int32(0), email.callCount)
	assert.Equal(t, int32(0), sms.callCount)
}
