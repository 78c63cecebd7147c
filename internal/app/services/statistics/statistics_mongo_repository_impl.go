package statistics

import (
	"context"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatisticsMongoRepository struct {
	AppointmentCollection *mongo.Collection
	VisitCollection       *mongo.Collection
	PatientCollection     *mongo.Collection
}

func NewStatisticsMongoRepository(db *mongo.Client, dbName string) StatisticsRepository {
	database := db.Database(dbName)
	return &StatisticsMongoRepository{
		AppointmentCollection: database.Collection(constvars.MongoCollectionAppointments),
		VisitCollection:       database.Collection(constvars.MongoCollectionVisits),
		PatientCollection:     database.Collection(constvars.MongoCollectionPatients),
	}
}

func (r *StatisticsMongoRepository) CountActiveAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	count, err := r.AppointmentCollection.CountDocuments(ctx, bson.M{
		"doctor":       objectID,
		"markedAsDone": false,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *StatisticsMongoRepository) CountVisitsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	count, err := r.VisitCollection.CountDocuments(ctx, bson.M{"doctor": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *StatisticsMongoRepository) CountPatients(ctx context.Context) (int64, error) {
	count, err := r.PatientCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
