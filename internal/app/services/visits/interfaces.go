package visits

import (
	"context"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitRepository interface {
	Insert(ctx context.Context, visit *models.Visit) (*models.Visit, error)
	FindByID(ctx context.Context, visitID string) (*models.Visit, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Visit, error)
	FindPopulatedByPatient(ctx context.Context, patientID string) ([]models.PopulatedVisit, error)
	FindPopulatedByDoctor(ctx context.Context, doctorID string, skip, limit int64) ([]models.PopulatedVisit, error)
	UpdateByID(ctx context.Context, visitID string, update bson.M) (*models.Visit, error)
	DeleteByID(ctx context.Context, visitID string) (bool, error)
}

// PatientLinker appends a freshly created visit to the owning patient's
// visit list. Satisfied by the patient repository.
type PatientLinker interface {
	PushVisit(ctx context.Context, patientID, visitID primitive.ObjectID) error
}

// MediaStorage hands out presigned URLs for visit media objects.
type MediaStorage interface {
	PresignedUploadURL(ctx context.Context, bucketName, objectName string) (string, error)
	PresignedDownloadURL(ctx context.Context, bucketName, objectName string) (string, error)
}

type VisitUsecase interface {
	CreateVisit(ctx context.Context, doctorID, patientID string, request *requests.CreateVisit) (*responses.VisitResult, error)
	GetPatientVisits(ctx context.Context, patientID string) (*responses.VisitListResult, error)
	GetDoctorVisits(ctx context.Context, doctorID string, pagination *requests.Pagination) (*responses.PopulatedVisitListResult, error)
	GetVisitByID(ctx context.Context, visitID string) (*responses.VisitResult, error)
	UpdateVisit(ctx context.Context, visitID string, request *requests.UpdateVisit) (*responses.VisitResult, error)
	DeleteVisit(ctx context.Context, visitID string) (*responses.VisitResult, error)
	MediaUploadURL(ctx context.Context, request *requests.VisitMediaUploadURL) (*responses.VisitMediaURLResult, error)
	MediaDownloadURL(ctx context.Context, objectName string) (*responses.VisitMediaDownloadURLResult, error)
}
