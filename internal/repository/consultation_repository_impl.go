package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type consultationRepository struct {
	coll *mongo.Collection
}

func NewConsultationRepository(db *mongo.Database) domainRepo.ConsultationRepository {
	return &consultationRepository{coll: db.Collection("consultations")}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	result, err := r.coll.InsertOne(ctx, consultation)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		consultation.ID = id
	}
	return nil
}
