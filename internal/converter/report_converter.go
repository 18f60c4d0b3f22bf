package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

func ReportToResponse(r *entity.MedicalReport) dto.MedicalReportResponse {
	return dto.MedicalReportResponse{
		ID:          r.ID.Hex(),
		PatientName: r.PatientName,
		Title:       r.Title,
		Type:        string(r.Type),
		Date:        r.Date,
		Content:     r.Content,
	}
}

func ReportsToResponses(reports []entity.MedicalReport) []dto.MedicalReportResponse {
	responses := make([]dto.MedicalReportResponse, len(reports))
	for i := range reports {
		responses[i] = ReportToResponse(&reports[i])
	}
	return responses
}
