package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Doctor is a catalog entry shown on the booking page.
type Doctor struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Speciality  string        `bson:"speciality" json:"speciality"`
	Experience  string        `bson:"experience" json:"experience"`
	Image       string        `bson:"image" json:"image"`
	Description string        `bson:"description" json:"description"`
	Available   bool          `bson:"available" json:"available"`
	CreatedAt   time.Time     `bson:"createdAt" json:"created_at"`
}
