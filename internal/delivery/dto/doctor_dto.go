package dto

type DoctorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Speciality  string `json:"speciality"`
	Experience  string `json:"experience"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
