package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthconnect/config"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownConsultationType = errors.New("unknown consultation type")
	ErrPriceExceedsCeiling     = errors.New("configured price exceeds the consultation ceiling")
)

type ConsultationUsecase interface {
	BookConsultation(ctx context.Context, req *dto.BookConsultationRequest) (*dto.BookConsultationResponse, error)
	Config() *dto.ConsultationConfigResponse
}

type consultationUsecase struct {
	log              *logrus.Logger
	cfg              config.ConsultationConfig
	consultationRepo repository.ConsultationRepository
	notifier         *service.Notifier
}

func NewConsultationUsecase(
	log *logrus.Logger,
	cfg config.ConsultationConfig,
	consultationRepo repository.ConsultationRepository,
	notifier *service.Notifier,
) ConsultationUsecase {
	return &consultationUsecase{
		log:              log,
		cfg:              cfg,
		consultationRepo: consultationRepo,
		notifier:         notifier,
	}
}

// priceFor resolves the fixed price for a consultation type. The ceiling
// check guards against a misconfigured price table, not client input.
func (u *consultationUsecase) priceFor(consultationType string) (int, error) {
	price, ok := u.cfg.Prices[consultationType]
	if !ok {
		return 0, ErrUnknownConsultationType
	}
	if price > u.cfg.MaxAmount {
		u.log.Errorf("Price %d for consultation type %q exceeds ceiling %d", price, consultationType, u.cfg.MaxAmount)
		return 0, ErrPriceExceedsCeiling
	}
	return price, nil
}

func (u *consultationUsecase) BookConsultation(ctx context.Context, req *dto.BookConsultationRequest) (*dto.BookConsultationResponse, error) {
	consultationType := strings.ToLower(strings.TrimSpace(req.ConsultationType))

	// Price guard runs before anything is persisted.
	amount, err := u.priceFor(consultationType)
	if err != nil {
		return nil, err
	}

	consultation := &entity.Consultation{
		ConsultationID: generateConsultationID(time.Now().UTC()),
		PatientName:    strings.TrimSpace(req.PatientName),
		PatientEmail:   strings.ToLower(strings.TrimSpace(req.PatientEmail)),
		PatientPhone:   strings.TrimSpace(req.PatientPhone),
		Type:           entity.ConsultationType(consultationType),
		Amount:         amount,
		PreferredDate:  strings.TrimSpace(req.PreferredDate),
		HealthConcern:  strings.TrimSpace(req.HealthConcern),
		MedicalHistory: strings.TrimSpace(req.MedicalHistory),
		Status:         entity.ConsultationStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := u.consultationRepo.Create(ctx, consultation); err != nil {
		u.log.Errorf("Failed to persist consultation: %+v", err)
		return nil, err
	}

	result := u.notifier.NotifyConsultation(ctx, consultation)

	u.log.Infof("Consultation booked: id=%s, type=%s, amount=%d, email_sent=%t, sms_sent=%t",
		consultation.ConsultationID, consultation.Type, consultation.Amount,
		result.EmailSent, result.SMSSent)

	return &dto.BookConsultationResponse{
		Success:        true,
		Message:        result.Message(),
		ConsultationID: consultation.ConsultationID,
		Type:           string(consultation.Type),
		Amount:         consultation.Amount,
		Status:         string(consultation.Status),
		Notifications: dto.NotificationsResponse{
			EmailSent: result.EmailSent,
			SMSSent:   result.SMSSent,
		},
	}, nil
}

func (u *consultationUsecase) Config() *dto.ConsultationConfigResponse {
	prices := make(map[string]int, len(u.cfg.Prices))
	for k, v := range u.cfg.Prices {
		prices[k] = v
	}
	return &dto.ConsultationConfigResponse{
		Prices:    prices,
		MaxAmount: u.cfg.MaxAmount,
	}
}

// generateConsultationID generates a unique consultation code: CONS-YYYYMMDD-XXXXXX
func generateConsultationID(now time.Time) string {
	randomBytes := make([]byte, 3)
	// crypto/rand.Read cannot fail on Go 1.24+.
	_, _ = rand.Read(randomBytes)
	return fmt.Sprintf("CONS-%s-%06X", now.Format("20060102"), randomBytes)
}
