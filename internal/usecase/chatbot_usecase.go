package usecase

import (
	"context"
	"strings"

	"healthconnect/internal/delivery/dto"
)

// ChatbotUsecase is a keyword-matched stub. There is no AI backend behind it;
// it points users at the right part of the site.
type ChatbotUsecase interface {
	Reply(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse
}

type chatbotUsecase struct{}

func NewChatbotUsecase() ChatbotUsecase {
	return &chatbotUsecase{}
}

type chatbotRule struct {
	keywords []string
	reply    string
}

var chatbotRules = []chatbotRule{
	{
		keywords: []string{"emergency", "urgent", "severe"},
		reply:    "If this is a medical emergency, please call your local emergency number right away. You can also request an emergency consultation from the consultations page.",
	},
	{
		keywords: []string{"appointment", "book", "booking", "doctor"},
		reply:    "You can book an appointment from the appointments page. Pick a doctor, date and time slot, and you will get a confirmation by email and SMS.",
	},
	{
		keywords: []string{"consultation", "consult", "online"},
		reply:    "Online consultations come in three types: instant, scheduled and emergency. Check /api/consultation-config for current prices.",
	},
	{
		keywords: []string{"report", "reports", "lab", "result"},
		reply:    "Your medical reports are available under My Reports after you log in.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I can help you with appointments, consultations and medical reports. What do you need?",
	},
}

func (u *chatbotUsecase) Reply(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse {
	message := strings.ToLower(req.Message)

	for _, rule := range chatbotRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(message, keyword) {
				return &dto.ChatResponse{Reply: rule.reply}
			}
		}
	}

	return &dto.ChatResponse{
		Reply: "I'm not sure I understood that. Try asking about appointments, consultations or medical reports.",
	}
}
