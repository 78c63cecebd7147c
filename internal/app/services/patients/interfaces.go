package patients

import (
	"context"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, skip, limit int64) ([]models.Patient, error)
	UpdateByID(ctx context.Context, patientID string, update bson.M) (*models.Patient, error)
	DeleteByID(ctx context.Context, patientID string) (bool, error)
	PushVisit(ctx context.Context, patientID, visitID primitive.ObjectID) error
}

// PopulatedVisitFinder is satisfied by the visit repository; it backs the
// patient's populated-visit listing without coupling the two usecases.
type PopulatedVisitFinder interface {
	FindPopulatedByPatient(ctx context.Context, patientID string) ([]models.PopulatedVisit, error)
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.PatientResult, error)
	GetPatients(ctx context.Context, pagination *requests.Pagination) (*responses.PatientListResult, error)
	GetPatientVisits(ctx context.Context, patientID string) (*responses.PopulatedVisitListResult, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.PatientResult, error)
	DeletePatient(ctx context.Context, patientID string) (*responses.PatientResult, error)
}
