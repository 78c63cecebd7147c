package visits

import (
	"context"
	"strings"
	"testing"

	"internistika-service/internal/app/config"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockVisitRepository struct {
	mock.Mock
}

func (m *mockVisitRepository) Insert(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	args := m.Called(ctx, visit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Visit), args.Error(1)
}

func (m *mockVisitRepository) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Visit), args.Error(1)
}

func (m *mockVisitRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Visit, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Visit), args.Error(1)
}

func (m *mockVisitRepository) FindPopulatedByPatient(ctx context.Context, patientID string) ([]models.PopulatedVisit, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopulatedVisit), args.Error(1)
}

func (m *mockVisitRepository) FindPopulatedByDoctor(ctx context.Context, doctorID string, skip, limit int64) ([]models.PopulatedVisit, error) {
	args := m.Called(ctx, doctorID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopulatedVisit), args.Error(1)
}

func (m *mockVisitRepository) UpdateByID(ctx context.Context, visitID string, update bson.M) (*models.Visit, error) {
	args := m.Called(ctx, visitID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Visit), args.Error(1)
}

func (m *mockVisitRepository) DeleteByID(ctx context.Context, visitID string) (bool, error) {
	args := m.Called(ctx, visitID)
	return args.Bool(0), args.Error(1)
}

type mockPatientLinker struct {
	mock.Mock
}

func (m *mockPatientLinker) PushVisit(ctx context.Context, patientID, visitID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, visitID)
	return args.Error(0)
}

type mockMediaStorage struct {
	mock.Mock
}

func (m *mockMediaStorage) PresignedUploadURL(ctx context.Context, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *mockMediaStorage) PresignedDownloadURL(ctx context.Context, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func newTestVisitUsecase(repo *mockVisitRepository, linker *mockPatientLinker, storage *mockMediaStorage) VisitUsecase {
	cfg := &config.InternalConfig{Minio: config.AppMinio{BucketName: "visit-media"}}
	return NewVisitUsecase(repo, linker, storage, cfg, zap.NewNop())
}

func TestCreateVisit_MissingAnalysis(t *testing.T) {
	repo := new(mockVisitRepository)
	linker := new(mockPatientLinker)
	uc := newTestVisitUsecase(repo, linker, new(mockMediaStorage))

	doctorID := primitive.NewObjectID().Hex()
	patientID := primitive.NewObjectID().Hex()

	result, err := uc.CreateVisit(context.Background(), doctorID, patientID, &requests.CreateVisit{Type: "checkup"})
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateVisit_LinksPatient(t *testing.T) {
	repo := new(mockVisitRepository)
	linker := new(mockPatientLinker)
	uc := newTestVisitUsecase(repo, linker, new(mockMediaStorage))

	doctorOID := primitive.NewObjectID()
	patientOID := primitive.NewObjectID()
	visitOID := primitive.NewObjectID()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(v *models.Visit) bool {
		return v.Doctor == doctorOID && v.Patient == patientOID
	})).Return(&models.Visit{ID: visitOID, Doctor: doctorOID, Patient: patientOID}, nil)
	linker.On("PushVisit", mock.Anything, patientOID, visitOID).Return(nil)

	result, err := uc.CreateVisit(context.Background(), doctorOID.Hex(), patientOID.Hex(), &requests.CreateVisit{
		Analysis: "blood panel",
		Type:     "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
	linker.AssertExpectations(t)
}

func TestCreateVisit_LinkFailureStillSucceeds(t *testing.T) {
	repo := new(mockVisitRepository)
	linker := new(mockPatientLinker)
	uc := newTestVisitUsecase(repo, linker, new(mockMediaStorage))

	doctorOID := primitive.NewObjectID()
	patientOID := primitive.NewObjectID()

	repo.On("Insert", mock.Anything, mock.Anything).Return(&models.Visit{ID: primitive.NewObjectID()}, nil)
	linker.On("PushVisit", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := uc.CreateVisit(context.Background(), doctorOID.Hex(), patientOID.Hex(), &requests.CreateVisit{
		Analysis: "blood panel",
		Type:     "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
}

func TestGetDoctorVisits_PaginationSkip(t *testing.T) {
	repo := new(mockVisitRepository)
	uc := newTestVisitUsecase(repo, new(mockPatientLinker), new(mockMediaStorage))

	doctorID := primitive.NewObjectID().Hex()
	repo.On("FindPopulatedByDoctor", mock.Anything, doctorID, int64(10), int64(10)).
		Return([]models.PopulatedVisit{}, nil)

	result, err := uc.GetDoctorVisits(context.Background(), doctorID, &requests.Pagination{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	repo.AssertExpectations(t)
}

func TestGetVisitByID_NotFound(t *testing.T) {
	repo := new(mockVisitRepository)
	uc := newTestVisitUsecase(repo, new(mockPatientLinker), new(mockMediaStorage))

	visitID := primitive.NewObjectID().Hex()
	repo.On("FindByID", mock.Anything, visitID).Return(nil, nil)

	result, err := uc.GetVisitByID(context.Background(), visitID)
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
	assert.Nil(t, result.Visit)
}

func TestUpdateVisit_NotFound(t *testing.T) {
	repo := new(mockVisitRepository)
	uc := newTestVisitUsecase(repo, new(mockPatientLinker), new(mockMediaStorage))

	visitID := primitive.NewObjectID().Hex()
	repo.On("UpdateByID", mock.Anything, visitID, mock.Anything).Return(nil, nil)

	diagnosis := "gastritis"
	result, err := uc.UpdateVisit(context.Background(), visitID, &requests.UpdateVisit{Diagnosis: &diagnosis})
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
}

func TestMediaUploadURL_InvalidKind(t *testing.T) {
	storage := new(mockMediaStorage)
	uc := newTestVisitUsecase(new(mockVisitRepository), new(mockPatientLinker), storage)

	result, err := uc.MediaUploadURL(context.Background(), &requests.VisitMediaUploadURL{
		FileName: "scan.png",
		Kind:     "mri",
	})
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	storage.AssertNotCalled(t, "PresignedUploadURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaUploadURL_Success(t *testing.T) {
	storage := new(mockMediaStorage)
	uc := newTestVisitUsecase(new(mockVisitRepository), new(mockPatientLinker), storage)

	storage.On("PresignedUploadURL", mock.Anything, "visit-media", mock.MatchedBy(func(objectName string) bool {
		return strings.HasPrefix(objectName, "rentgen/")
	})).Return("https://minio.local/presigned", nil)

	result, err := uc.MediaUploadURL(context.Background(), &requests.VisitMediaUploadURL{
		FileName: "scan.png",
		Kind:     "rentgen",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, "https://minio.local/presigned", result.UploadURL)
	assert.NotEmpty(t, result.ObjectName)
}

func TestMediaDownloadURL_MissingObject(t *testing.T) {
	storage := new(mockMediaStorage)
	uc := newTestVisitUsecase(new(mockVisitRepository), new(mockPatientLinker), storage)

	result, err := uc.MediaDownloadURL(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	storage.AssertNotCalled(t, "PresignedDownloadURL", mock.Anything, mock.Anything, mock.Anything)
}
