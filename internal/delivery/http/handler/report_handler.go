package handler

import (
	"net/http"

	"healthconnect/internal/delivery/http/middleware"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// GetMyReports returns the medical reports belonging to the logged-in user
func (h *ReportHandler) GetMyReports(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Login required")
		return
	}

	reports, err := h.reportUsecase.GetReportsByEmail(r.Context(), session.Email)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}
