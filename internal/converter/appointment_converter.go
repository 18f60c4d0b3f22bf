package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:        a.ID.Hex(),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Date:      a.Date,
		TimeSlot:  a.TimeSlot,
		Doctor:    a.Doctor,
		CreatedAt: a.CreatedAt,
	}
}
