package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ConsultationType classifies how soon the patient wants to be seen.
type ConsultationType string

const (
	ConsultationTypeInstant   ConsultationType = "instant"
	ConsultationTypeScheduled ConsultationType = "scheduled"
	ConsultationTypeEmergency ConsultationType = "emergency"
)

// ConsultationStatus tracks a consultation through its lifecycle. Records are
// created pending; later transitions happen outside this service.
type ConsultationStatus string

const (
	ConsultationStatusPending    ConsultationStatus = "pending"
	ConsultationStatusConfirmed  ConsultationStatus = "confirmed"
	ConsultationStatusInProgress ConsultationStatus = "in-progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusCancelled  ConsultationStatus = "cancelled"
)

// Consultation is an online consultation request. Amount is derived from the
// configured price for the consultation type, never taken from the request.
type Consultation struct {
	ID             bson.ObjectID      `bson:"_id,omitempty" json:"id"`
	ConsultationID string             `bson:"consultationId" json:"consultation_id"`
	PatientName    string             `bson:"patientName" json:"patient_name"`
	PatientEmail   string             `bson:"email" json:"patient_email"`
	PatientPhone   string             `bson:"phone" json:"patient_phone"`
	Type           ConsultationType   `bson:"consultationType" json:"consultation_type"`
	Amount         int                `bson:"amount" json:"amount"`
	PreferredDate  string             `bson:"preferredDate,omitempty" json:"preferred_date,omitempty"`
	HealthConcern  string             `bson:"healthConcern" json:"health_concern"`
	MedicalHistory string             `bson:"medicalHistory,omitempty" json:"medical_history,omitempty"`
	Status         ConsultationStatus `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}
