package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type doctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) domainRepo.DoctorRepository {
	return &doctorRepository{coll: db.Collection("doctors")}
}

func (r *doctorRepository) FindAvailable(ctx context.Context) ([]entity.Doctor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"available": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []entity.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *doctorRepository) CreateMany(ctx context.Context, doctors []entity.Doctor) error {
	docs := make([]interface{}, len(doctors))
	for i := range doctors {
		docs[i] = doctors[i]
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
