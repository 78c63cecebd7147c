package patients

import (
	"context"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) *PatientMongoRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if patient.Visits == nil {
		patient.Visits = []primitive.ObjectID{}
	}
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	patient.ID = result.InsertedID.(primitive.ObjectID)
	return patient, nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (r *PatientMongoRepository) UpdateByID(ctx context.Context, patientID string, update bson.M) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var patient models.Patient
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *PatientMongoRepository) PushVisit(ctx context.Context, patientID, visitID primitive.ObjectID) error {
	_, err := r.Collection.UpdateOne(
		ctx,
		bson.M{"_id": patientID},
		bson.M{"$push": bson.M{"visits": visitID}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
