package visits

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

type VisitMongoRepository struct {
	Collection *mongo.Collection
}

func NewVisitMongoRepository(db *mongo.Client, dbName string) *VisitMongoRepository {
	return &VisitMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVisits),
	}
}

func (r *VisitMongoRepository) Insert(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	if visit.Rentgen == nil {
		visit.Rentgen = []string{}
	}
	if visit.CT == nil {
		visit.CT = []string{}
	}
	if visit.Echo == nil {
		visit.Echo = []string{}
	}
	result, err := r.Collection.InsertOne(ctx, visit)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	visit.ID = result.InsertedID.(primitive.ObjectID)
	return visit, nil
}

func (r *VisitMongoRepository) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var visit models.Visit
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Visit, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"patient": objectID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.Visit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, nil
}

func (r *VisitMongoRepository) FindPopulatedByPatient(ctx context.Context, patientID string) ([]models.PopulatedVisit, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "patient", Value: objectID}}}},
	}
	pipeline = append(pipeline, populationStages()...)

	return r.aggregatePopulated(ctx, pipeline)
}

func (r *VisitMongoRepository) FindPopulatedByDoctor(ctx context.Context, doctorID string, skip, limit int64) ([]models.PopulatedVisit, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "doctor", Value: objectID}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, populationStages()...)

	return r.aggregatePopulated(ctx, pipeline)
}

// populationStages expands the patient and doctor references into full
// documents. References that no longer resolve are kept as null rather than
// dropping the visit.
func populationStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionPatients},
			{Key: "localField", Value: "patient"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "patient"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$patient"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionDoctors},
			{Key: "localField", Value: "doctor"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "doctor"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$doctor"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (r *VisitMongoRepository) aggregatePopulated(ctx context.Context, pipeline mongo.Pipeline) ([]models.PopulatedVisit, error) {
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.PopulatedVisit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, nil
}

func (r *VisitMongoRepository) UpdateByID(ctx context.Context, visitID string, update bson.M) (*models.Visit, error) {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var visit models.Visit
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) DeleteByID(ctx context.Context, visitID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
