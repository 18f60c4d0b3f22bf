package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Appointment is a booked visit. All fields are required at booking time and
// the record is immutable afterwards.
type Appointment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone" json:"phone"`
	Date      string        `bson:"date" json:"date"`
	TimeSlot  string        `bson:"time" json:"time_slot"`
	Doctor    string        `bson:"doctor" json:"doctor"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
}
