package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
)

type DoctorRepository interface {
	FindAvailable(ctx context.Context) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, doctors []entity.Doctor) error
}
