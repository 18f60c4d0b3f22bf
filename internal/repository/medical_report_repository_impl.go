package repository

import (
	"context"

	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type medicalReportRepository struct {
	coll *mongo.Collection
}

func NewMedicalReportRepository(db *mongo.Database) domainRepo.MedicalReportRepository {
	return &medicalReportRepository{coll: db.Collection("medicalReports")}
}

func (r *medicalReportRepository) FindByEmail(ctx context.Context, email string) ([]entity.MedicalReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []entity.MedicalReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
