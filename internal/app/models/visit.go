package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Visit stores raw references to its patient and doctor. Referential
// existence is not checked at creation time.
type Visit struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Rentgen    []string           `json:"rentgen" bson:"rentgen"`
	CT         []string           `json:"ct" bson:"ct"`
	Echo       []string           `json:"echo" bson:"echo"`
	Analysis   string             `json:"analysis" bson:"analysis"`
	Type       string             `json:"type" bson:"type"`
	Drugs      string             `json:"drugs" bson:"drugs"`
	Injections string             `json:"injections" bson:"injections"`
	Diagnosis  string             `json:"diagnosis" bson:"diagnosis"`
	Patient    primitive.ObjectID `json:"patient" bson:"patient"`
	Doctor     primitive.ObjectID `json:"doctor" bson:"doctor"`
	TimeModel  `bson:",inline"`
}

// PopulatedVisit is a Visit whose patient and doctor references have been
// replaced by the full documents via a $lookup pipeline.
type PopulatedVisit struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Rentgen    []string           `json:"rentgen" bson:"rentgen"`
	CT         []string           `json:"ct" bson:"ct"`
	Echo       []string           `json:"echo" bson:"echo"`
	Analysis   string             `json:"analysis" bson:"analysis"`
	Type       string             `json:"type" bson:"type"`
	Drugs      string             `json:"drugs" bson:"drugs"`
	Injections string             `json:"injections" bson:"injections"`
	Diagnosis  string             `json:"diagnosis" bson:"diagnosis"`
	Patient    *Patient           `json:"patient" bson:"patient"`
	Doctor     *Doctor            `json:"doctor" bson:"doctor"`
	TimeModel  `bson:",inline"`
}
