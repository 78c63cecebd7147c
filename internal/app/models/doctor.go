package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is an account holder. Password carries the bcrypt hash and is
// never serialized to clients.
type Doctor struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	TimeModel `bson:",inline"`
}
