package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockStatisticsRepository struct {
	mock.Mock
}

func (m *mockStatisticsRepository) CountActiveAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatisticsRepository) CountVisitsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatisticsRepository) CountPatients(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetDoctorStatistics_MissingDoctorID(t *testing.T) {
	repo := new(mockStatisticsRepository)
	uc := NewStatisticsUsecase(repo, zap.NewNop())

	result, err := uc.GetDoctorStatistics(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	repo.AssertNotCalled(t, "CountActiveAppointmentsByDoctor", mock.Anything, mock.Anything)
}

func TestGetDoctorStatistics_CollectsAllCounters(t *testing.T) {
	repo := new(mockStatisticsRepository)
	uc := NewStatisticsUsecase(repo, zap.NewNop())

	doctorID := primitive.NewObjectID().Hex()
	repo.On("CountActiveAppointmentsByDoctor", mock.Anything, doctorID).Return(int64(4), nil)
	repo.On("CountVisitsByDoctor", mock.Anything, doctorID).Return(int64(17), nil)
	repo.On("CountPatients", mock.Anything).Return(int64(52), nil)

	result, err := uc.GetDoctorStatistics(context.Background(), doctorID)
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, int64(4), result.Appointments)
	assert.Equal(t, int64(17), result.Visits)
	assert.Equal(t, int64(52), result.Patients)
	repo.AssertExpectations(t)
}

func TestGetDoctorStatistics_RepositoryError(t *testing.T) {
	repo := new(mockStatisticsRepository)
	uc := NewStatisticsUsecase(repo, zap.NewNop())

	doctorID := primitive.NewObjectID().Hex()
	repo.On("CountActiveAppointmentsByDoctor", mock.Anything, doctorID).Return(int64(0), assert.AnError)

	result, err := uc.GetDoctorStatistics(context.Background(), doctorID)
	require.Error(t, err)
	assert.Nil(t, result)
}
