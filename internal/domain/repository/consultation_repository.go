package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
}
