package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type appointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) domainRepo.AppointmentRepository {
	return &appointmentRepository{coll: db.Collection("appointments")}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	result, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		appointment.ID = id
	}
	return nil
}
