package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Patient record. Height and weight are pointers so that a stored zero is
// distinguishable from an absent value.
type Patient struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	FirstName       string               `json:"firstName" bson:"firstName"`
	LastName        string               `json:"lastName" bson:"lastName"`
	MiddleName      string               `json:"middleName" bson:"middleName"`
	Email           string               `json:"email" bson:"email"`
	Gender          string               `json:"gender" bson:"gender"`
	DateOfBirth     string               `json:"dateOfBirth" bson:"dateOfBirth"`
	BloodGroup      string               `json:"bloodGroup" bson:"bloodGroup"`
	Height          *float64             `json:"height" bson:"height"`
	Weight          *float64             `json:"weight" bson:"weight"`
	Profession      string               `json:"profession" bson:"profession"`
	Location        string               `json:"location" bson:"location"`
	Address         string               `json:"address" bson:"address"`
	TelephoneNumber string               `json:"telephoneNumber" bson:"telephoneNumber"`
	Visits          []primitive.ObjectID `json:"visits" bson:"visits"`
	TimeModel       `bson:",inline"`
}
