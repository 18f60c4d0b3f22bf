package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account in the users collection. Username and email carry
// unique indexes, so duplicates are rejected at write time.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string        `bson:"username" json:"username"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
}
