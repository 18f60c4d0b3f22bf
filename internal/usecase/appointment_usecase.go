package usecase

import (
	"context"
	"strings"
	"time"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        *service.Notifier
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier *service.Notifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// BookAppointment runs the linear booking workflow: the request arrives
// already validated, gets normalized and persisted, then both notification
// channels are attempted. A persistence failure aborts the request; a
// notification failure only clears the corresponding flag.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error) {
	appointment := &entity.Appointment{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Date:      strings.TrimSpace(req.Date),
		TimeSlot:  strings.TrimSpace(req.TimeSlot),
		Doctor:    strings.TrimSpace(req.Doctor),
		CreatedAt: time.Now().UTC(),
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to persist appointment: %+v", err)
		return nil, err
	}

	result := u.notifier.NotifyAppointment(ctx, appointment)

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s %s, email_sent=%t, sms_sent=%t",
		appointment.ID.Hex(), appointment.Doctor, appointment.Date, appointment.TimeSlot,
		result.EmailSent, result.SMSSent)

	return &dto.BookAppointmentResponse{
		Success:     true,
		Message:     result.Message(),
		Appointment: converter.AppointmentToResponse(appointment),
		Notifications: dto.NotificationsResponse{
			EmailSent: result.EmailSent,
			SMSSent:   result.SMSSent,
		},
	}, nil
}
