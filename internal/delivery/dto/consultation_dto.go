package dto

// Request DTOs

type BookConsultationRequest struct {
	PatientName      string `json:"patientName" validate:"required,notblank"`
	PatientEmail     string `json:"patientEmail" validate:"required,email"`
	PatientPhone     string `json:"patientPhone" validate:"required,phone"`
	ConsultationType string `json:"consultationType" validate:"required,oneof=instant scheduled emergency"`
	PreferredDate    string `json:"preferredDate,omitempty" validate:"omitempty"`
	HealthConcern    string `json:"healthConcern" validate:"required,notblank"`
	MedicalHistory   string `json:"medicalHistory,omitempty" validate:"omitempty"`
}

// Response DTOs

type BookConsultationResponse struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	ConsultationID string                `json:"consultationId"`
	Type           string                `json:"type"`
	Amount         int                   `json:"amount"`
	Status         string                `json:"status"`
	Notifications  NotificationsResponse `json:"notifications"`
}

// ConsultationConfigResponse exposes the price table and the payment ceiling.
type ConsultationConfigResponse struct {
	Prices    map[string]int `json:"prices"`
	MaxAmount int            `json:"maxAmount"`
}
