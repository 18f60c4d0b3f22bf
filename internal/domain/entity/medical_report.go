package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReportType classifies a medical report.
type ReportType string

const (
	ReportTypeLab          ReportType = "lab"
	ReportTypeXRay         ReportType = "xray"
	ReportTypePrescription ReportType = "prescription"
	ReportTypeConsultation ReportType = "consultation"
	ReportTypeSurgery      ReportType = "surgery"
	ReportTypeGeneral      ReportType = "general"
)

// MedicalReport is a document retrievable by the patient it belongs to.
// Retrieval is scoped to the authenticated user's email.
type MedicalReport struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName string        `bson:"patientName" json:"patient_name"`
	Email       string        `bson:"email" json:"email"`
	Title       string        `bson:"title" json:"title"`
	Type        ReportType    `bson:"type" json:"type"`
	Date        time.Time     `bson:"date" json:"date"`
	Content     string        `bson:"content" json:"content"`
	CreatedAt   time.Time     `bson:"createdAt" json:"created_at"`
}
