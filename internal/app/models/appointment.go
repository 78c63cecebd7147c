package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment. MarkedAsDone gates inclusion in active-appointment listings.
type Appointment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient      primitive.ObjectID `json:"patient" bson:"patient"`
	Doctor       primitive.ObjectID `json:"doctor" bson:"doctor"`
	Date         *time.Time         `json:"date" bson:"date"`
	Time         string             `json:"time" bson:"time"`
	MarkedAsDone bool               `json:"markedAsDone" bson:"markedAsDone"`
	TimeModel    `bson:",inline"`
}

// PopulatedAppointment carries the full patient document for listings.
type PopulatedAppointment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient      *Patient           `json:"patient" bson:"patient"`
	Doctor       primitive.ObjectID `json:"doctor" bson:"doctor"`
	Date         *time.Time         `json:"date" bson:"date"`
	Time         string             `json:"time" bson:"time"`
	MarkedAsDone bool               `json:"markedAsDone" bson:"markedAsDone"`
	TimeModel    `bson:",inline"`
}
