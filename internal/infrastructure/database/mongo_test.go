package database

import (
	"context"
	"testing"

	"healthconnect/config"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

type fakeDoctorRepository struct {
	count   int64
	created []entity.Doctor
}

var _ repository.DoctorRepository = (*fakeDoctorRepository)(nil)

func (f *fakeDoctorRepository) FindAvailable(ctx context.Context) ([]entity.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeDoctorRepository) CreateMany(ctx context.Context, doctors []entity.Doctor) error {
	f.created = append(f.created, doctors...)
	return nil
}

func TestNewMongoConnection_InvalidURI(t *testing.T) {
	_, err := NewMongoConnection(config.MongoConfig{URI: "not-a-mongodb-uri", Database: "healthconnect"})

	assert.Error(t, err)
}

func TestSeedDoctors_EmptyCatalog(t *testing.T) {
	repo := &fakeDoctorRepository{}

	assert.NoError(t, SeedDoctors(context.Background(), repo))
	assert.Len(t, repo.created, 3)
	for _, d := range repo.created {
		assert.True(t, d.Available)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Speciality)
	}
}

func TestSeedDoctors_SkipsWhenPopulated(t *testing.T) {
	repo := &fakeDoctorRepository{count: 3}

	assert.NoError(t, SeedDoctors(context.Background(), repo))
	assert.Empty(t, repo.created)
}
