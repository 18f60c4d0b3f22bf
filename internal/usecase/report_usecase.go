package usecase

import (
	"context"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	GetReportsByEmail(ctx context.Context, email string) (*dto.MedicalReportListResponse, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.MedicalReportRepository
}

func NewReportUsecase(log *logrus.Logger, reportRepo repository.MedicalReportRepository) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) GetReportsByEmail(ctx context.Context, email string) (*dto.MedicalReportListResponse, error) {
	reports, err := u.reportRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find reports for %s: %+v", email, err)
		return nil, err
	}

	return &dto.MedicalReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}
