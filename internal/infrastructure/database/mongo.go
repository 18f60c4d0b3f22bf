package database

import (
	"context"
	"fmt"
	"time"

	"healthconnect/config"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(30 * time.Second).
		SetTimeout(45 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the workflows rely on. Username and email
// uniqueness is enforced here, at write time, rather than in application code.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.Collection("appointments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	_, err = db.Collection("consultations").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "consultationId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create consultation indexes: %w", err)
	}

	_, err = db.Collection("medicalReports").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create medical report indexes: %w", err)
	}

	return nil
}

// SeedDoctors inserts the starter catalog when the collection is empty.
func SeedDoctors(ctx context.Context, doctorRepo repository.DoctorRepository) error {
	count, err := doctorRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	doctors := []entity.Doctor{
		{
			Name:        "Dr. Aditi Sharma",
			Speciality:  "Cardiologist",
			Experience:  "15+ years",
			Image:       "/doc2.jpg",
			Description: "Expert in treating heart diseases and preventive cardiology.",
			Available:   true,
			CreatedAt:   now,
		},
		{
			Name:        "Dr. Ravi Kumar",
			Speciality:  "Dermatologist",
			Experience:  "12+ years",
			Image:       "/doc1.jpg",
			Description: "Specializes in skin care, acne treatments, and cosmetic dermatology.",
			Available:   true,
			CreatedAt:   now,
		},
		{
			Name:        "Dr. Sneha Iyer",
			Speciality:  "Pediatrician",
			Experience:  "10+ years",
			Image:       "/doc3.jpg",
			Description: "Dedicated to child healthcare and preventive pediatrics.",
			Available:   true,
			CreatedAt:   now,
		},
	}

	if err := doctorRepo.CreateMany(ctx, doctors); err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}

	logrus.Infof("Seeded %d doctors", len(doctors))
	return nil
}
