package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

func DoctorToResponse(d *entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Speciality:  d.Speciality,
		Experience:  d.Experience,
		Image:       d.Image,
		Description: d.Description,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = DoctorToResponse(&doctors[i])
	}
	return responses
}
