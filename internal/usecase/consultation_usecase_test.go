package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"healthconnect/config"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testConsultationConfig() config.ConsultationConfig {
	return config.ConsultationConfig{
		Prices: map[string]int{
			"scheduled": 299,
			"instant":   499,
			"emergency": 999,
		},
		MaxAmount: 1000,
	}
}

func consultationRequest(consultationType string) *dto.BookConsultationRequest {
	return &dto.BookConsultationRequest{
		PatientName:      "John Doe",
		PatientEmail:     "john.doe@example.com",
		PatientPhone:     "+15557654321",
		ConsultationType: consultationType,
		HealthConcern:    "Persistent headache",
	}
}

func newConsultationUsecase(cfg config.ConsultationConfig, repo *MockConsultationRepository) ConsultationUsecase {
	log := logrus.New()
	notifier := service.NewNotifier(&stubEmailSender{}, &stubSMSSender{}, log)
	return NewConsultationUsecase(log, cfg, repo, notifier)
}

func TestBookConsultation_AmountEqualsConfiguredPrice(t *testing.T) {
	for consultationType, price := range testConsultationConfig().Prices {
		t.Run(consultationType, func(t *testing.T) {
			repo := &MockConsultationRepository{}
			u := newConsultationUsecase(testConsultationConfig(), repo)

			result, err := u.BookConsultation(context.Background(), consultationRequest(consultationType))

			assert.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, price, result.Amount)
			assert.Equal(t, price, repo.Created[0].Amount)
			assert.LessOrEqual(t, repo.Created[0].Amount, 1000)
			assert.Equal(t, "pending", result.Status)
		})
	}
}

func TestBookConsultation_UnknownTypeRejectedBeforePersistence(t *testing.T) {
	repo := &MockConsultationRepository{}
	u := newConsultationUsecase(testConsultationConfig(), repo)

	_, err := u.BookConsultation(context.Background(), consultationRequest("telepathy"))

	assert.ErrorIs(t, err, ErrUnknownConsultationType)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestBookConsultation_MisconfiguredPriceAboveCeilingRejected(t *testing.T) {
	cfg := testConsultationConfig()
	cfg.Prices["emergency"] = 1500

	repo := &MockConsultationRepository{}
	u := newConsultationUsecase(cfg, repo)

	_, err := u.BookConsultation(context.Background(), consultationRequest("emergency"))

	assert.ErrorIs(t, err, ErrPriceExceedsCeiling)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestBookConsultation_GeneratesConsultationID(t *testing.T) {
	repo := &MockConsultationRepository{}
	u := newConsultationUsecase(testConsultationConfig(), repo)

	result, err := u.BookConsultation(context.Background(), consultationRequest("instant"))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ConsultationID, "CONS-"))
	assert.Equal(t, result.ConsultationID, repo.Created[0].ConsultationID)
}

func TestBookConsultation_NormalizesTypeCase(t *testing.T) {
	repo := &MockConsultationRepository{}
	u := newConsultationUsecase(testConsultationConfig(), repo)

	result, err := u.BookConsultation(context.Background(), consultationRequest("  Instant "))

	assert.NoError(t, err)
	assert.Equal(t, "instant", result.Type)
}

func TestConsultationConfig_ReturnsCopy(t *testing.T) {
	u := newConsultationUsecase(testConsultationConfig(), &MockConsultationRepository{})

	cfg := u.Config()
	assert.Equal(t, 1000, cfg.MaxAmount)
	assert.Equal(t, 499, cfg.Prices["instant"])

	// Mutating the response must not touch the live table.
	cfg.Prices["instant"] = 1
	assert.Equal(t, 499, u.Config().Prices["instant"])
}

func TestGenerateConsultationID_Format(t *testing.T) {
	id := generateConsultationID(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "CONS", parts[0])
	assert.Equal(t, "20250110", parts[1])
	assert.Len(t, parts[2], 6)
}
