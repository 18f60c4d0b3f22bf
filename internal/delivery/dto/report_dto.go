package dto

import "time"

type MedicalReportResponse struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Content     string    `json:"content"`
}

type MedicalReportListResponse struct {
	Reports []MedicalReportResponse `json:"reports"`
	Total   int                     `json:"total"`
}
