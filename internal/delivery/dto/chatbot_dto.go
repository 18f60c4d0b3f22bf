package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
