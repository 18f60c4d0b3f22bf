package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
)

type MedicalReportRepository interface {
	FindByEmail(ctx context.Context, email string) ([]entity.MedicalReport, error)
}
