package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	Date     string `json:"date" validate:"required,notblank"`
	TimeSlot string `json:"timeSlot" validate:"required,notblank"`
	Doctor   string `json:"doctor" validate:"required,notblank"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Doctor    string    `json:"doctor"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationsResponse reports the best-effort delivery outcome per channel.
type NotificationsResponse struct {
	EmailSent bool `json:"emailSent"`
	SMSSent   bool `json:"smsSent"`
}

type BookAppointmentResponse struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	Appointment   *AppointmentResponse  `json:"appointment"`
	Notifications NotificationsResponse `json:"notifications"`
}
