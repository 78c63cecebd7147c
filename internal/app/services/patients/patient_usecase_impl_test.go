package patients

import (
	"context"
	"testing"

	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientRepository) FindAll(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *mockPatientRepository) UpdateByID(ctx context.Context, patientID string, update bson.M) (*models.Patient, error) {
	args := m.Called(ctx, patientID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientRepository) DeleteByID(ctx context.Context, patientID string) (bool, error) {
	args := m.Called(ctx, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPatientRepository) PushVisit(ctx context.Context, patientID, visitID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, visitID)
	return args.Error(0)
}

type mockVisitFinder struct {
	mock.Mock
}

func (m *mockVisitFinder) FindPopulatedByPatient(ctx context.Context, patientID string) ([]models.PopulatedVisit, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopulatedVisit), args.Error(1)
}

func float64Ptr(v float64) *float64 { return &v }

func validCreatePatient() *requests.CreatePatient {
	return &requests.CreatePatient{
		FirstName:       "Nodira",
		LastName:        "Karimova",
		MiddleName:      "A",
		Email:           "nodira@clinic.test",
		Gender:          "female",
		DateOfBirth:     "1990-04-12",
		BloodGroup:      "A+",
		Height:          float64Ptr(164),
		Weight:          float64Ptr(58),
		Profession:      "teacher",
		Location:        "Tashkent",
		Address:         "Chilonzor 5",
		TelephoneNumber: "+998901234567",
	}
}

func TestCreatePatient_MissingField(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, new(mockVisitFinder), zap.NewNop())

	request := validCreatePatient()
	request.BloodGroup = ""

	result, err := uc.CreatePatient(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	assert.Equal(t, "Please fill in the missing fields", result.Message)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreatePatient_ZeroHeightIsLegal(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, new(mockVisitFinder), zap.NewNop())

	request := validCreatePatient()
	request.Height = float64Ptr(0)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
		return p.Height != nil && *p.Height == 0
	})).Return(&models.Patient{ID: primitive.NewObjectID()}, nil)

	result, err := uc.CreatePatient(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
	repo.AssertExpectations(t)
}

func TestGetPatients_PaginationSkip(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, new(mockVisitFinder), zap.NewNop())

	repo.On("FindAll", mock.Anything, int64(40), int64(20)).Return([]models.Patient{}, nil)

	result, err := uc.GetPatients(context.Background(), &requests.Pagination{Page: 3, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	assert.NotNil(t, result.Patients)
	repo.AssertExpectations(t)
}

func TestGetPatientVisits_PatientNotFound(t *testing.T) {
	repo := new(mockPatientRepository)
	finder := new(mockVisitFinder)
	uc := NewPatientUsecase(repo, finder, zap.NewNop())

	patientID := primitive.NewObjectID().Hex()
	repo.On("FindByID", mock.Anything, patientID).Return(nil, nil)

	result, err := uc.GetPatientVisits(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
	finder.AssertNotCalled(t, "FindPopulatedByPatient", mock.Anything, mock.Anything)
}

func TestGetPatientVisits_Populated(t *testing.T) {
	repo := new(mockPatientRepository)
	finder := new(mockVisitFinder)
	uc := NewPatientUsecase(repo, finder, zap.NewNop())

	patientID := primitive.NewObjectID()
	repo.On("FindByID", mock.Anything, patientID.Hex()).Return(&models.Patient{ID: patientID}, nil)
	finder.On("FindPopulatedByPatient", mock.Anything, patientID.Hex()).Return([]models.PopulatedVisit{
		{ID: primitive.NewObjectID(), Patient: &models.Patient{ID: patientID}},
	}, nil)

	result, err := uc.GetPatientVisits(context.Background(), patientID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	require.Len(t, result.Visits, 1)
	assert.NotNil(t, result.Visits[0].Patient)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, new(mockVisitFinder), zap.NewNop())

	patientID := primitive.NewObjectID().Hex()
	repo.On("UpdateByID", mock.Anything, patientID, mock.Anything).Return(nil, nil)

	location := "Samarkand"
	result, err := uc.UpdatePatient(context.Background(), patientID, &requests.UpdatePatient{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
}

func TestDeletePatient_Success(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, new(mockVisitFinder), zap.NewNop())

	patientID := primitive.NewObjectID().Hex()
	repo.On("DeleteByID", mock.Anything, patientID).Return(true, nil)

	result, err := uc.DeletePatient(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
	assert.Nil(t, result.Patient)
}
