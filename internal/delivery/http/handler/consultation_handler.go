package handler

import (
	"encoding/json"
	"net/http"

	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"
	"healthconnect/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// BookConsultation handles online consultation requests
func (h *ConsultationHandler) BookConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.BookConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.consultationUsecase.BookConsultation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownConsultationType:
			response.Error(w, http.StatusBadRequest, "Unknown consultation type", nil)
		case usecase.ErrPriceExceedsCeiling:
			// A misconfigured price table is a server problem, not a client one.
			response.InternalServerError(w, "Consultation pricing is misconfigured")
		default:
			response.InternalServerError(w, "Failed to book consultation")
		}
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// GetConsultationConfig returns the price table and ceiling
func (h *ConsultationHandler) GetConsultationConfig(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.consultationUsecase.Config())
}
