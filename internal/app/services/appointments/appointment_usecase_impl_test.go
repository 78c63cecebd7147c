package appointments

import (
	"context"
	"testing"

	"internistika-service/internal/app/models"
	"internistika-service/internal/app/services/shared/reminderqueue"
	"internistika-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindActivePopulatedByDoctor(ctx context.Context, doctorID string, skip, limit int64) ([]models.PopulatedAppointment, error) {
	args := m.Called(ctx, doctorID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopulatedAppointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateByID(ctx context.Context, appointmentID string, update bson.M) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

type mockReminderPublisher struct {
	mock.Mock
}

func (m *mockReminderPublisher) Publish(ctx context.Context, message *reminderqueue.ReminderMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func TestCreateAppointment_MissingDate(t *testing.T) {
	repo := new(mockAppointmentRepository)
	publisher := new(mockReminderPublisher)
	uc := NewAppointmentUsecase(repo, publisher, zap.NewNop())

	doctorID := primitive.NewObjectID().Hex()
	patientID := primitive.NewObjectID().Hex()

	result, err := uc.CreateAppointment(context.Background(), doctorID, patientID, &requests.CreateAppointment{Time: "14:30"})
	require.NoError(t, err)
	assert.Equal(t, 400, result.Status)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateAppointment_PublishesReminder(t *testing.T) {
	repo := new(mockAppointmentRepository)
	publisher := new(mockReminderPublisher)
	uc := NewAppointmentUsecase(repo, publisher, zap.NewNop())

	doctorOID := primitive.NewObjectID()
	patientOID := primitive.NewObjectID()
	appointmentOID := primitive.NewObjectID()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.Doctor == doctorOID && a.Patient == patientOID && !a.MarkedAsDone && a.Date != nil
	})).Return(&models.Appointment{ID: appointmentOID, Doctor: doctorOID, Patient: patientOID, Time: "14:30"}, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg *reminderqueue.ReminderMessage) bool {
		return msg.AppointmentID == appointmentOID.Hex() && msg.DoctorID == doctorOID.Hex()
	})).Return(nil)

	result, err := uc.CreateAppointment(context.Background(), doctorOID.Hex(), patientOID.Hex(), &requests.CreateAppointment{
		Date: "2026-09-15",
		Time: "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
	publisher.AssertExpectations(t)
}

func TestCreateAppointment_PublishFailureStillSucceeds(t *testing.T) {
	repo := new(mockAppointmentRepository)
	publisher := new(mockReminderPublisher)
	uc := NewAppointmentUsecase(repo, publisher, zap.NewNop())

	repo.On("Insert", mock.Anything, mock.Anything).Return(&models.Appointment{ID: primitive.NewObjectID()}, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := uc.CreateAppointment(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), &requests.CreateAppointment{
		Date: "2026-09-15",
		Time: "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
}

func TestGetDoctorAppointments_ActiveOnlyFilterDelegated(t *testing.T) {
	repo := new(mockAppointmentRepository)
	uc := NewAppointmentUsecase(repo, new(mockReminderPublisher), zap.NewNop())

	doctorID := primitive.NewObjectID().Hex()
	repo.On("FindActivePopulatedByDoctor", mock.Anything, doctorID, int64(0), int64(10)).
		Return([]models.PopulatedAppointment{
			{ID: primitive.NewObjectID(), MarkedAsDone: false, Patient: &models.Patient{}},
		}, nil)

	result, err := uc.GetDoctorAppointments(context.Background(), doctorID, &requests.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Status)
	require.Len(t, result.Appointments, 1)
	assert.False(t, result.Appointments[0].MarkedAsDone)
	repo.AssertExpectations(t)
}

func TestUpdateAppointment_MarkAsDone(t *testing.T) {
	repo := new(mockAppointmentRepository)
	uc := NewAppointmentUsecase(repo, new(mockReminderPublisher), zap.NewNop())

	appointmentID := primitive.NewObjectID().Hex()
	done := true
	repo.On("UpdateByID", mock.Anything, appointmentID, mock.MatchedBy(func(update bson.M) bool {
		return update["markedAsDone"] == true
	})).Return(&models.Appointment{MarkedAsDone: true}, nil)

	result, err := uc.UpdateAppointment(context.Background(), appointmentID, &requests.UpdateAppointment{MarkedAsDone: &done})
	require.NoError(t, err)
	assert.Equal(t, 201, result.Status)
	assert.True(t, result.Appointment.MarkedAsDone)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo := new(mockAppointmentRepository)
	uc := NewAppointmentUsecase(repo, new(mockReminderPublisher), zap.NewNop())

	appointmentID := primitive.NewObjectID().Hex()
	newTime := "09:00"
	repo.On("UpdateByID", mock.Anything, appointmentID, mock.Anything).Return(nil, nil)

	result, err := uc.UpdateAppointment(context.Background(), appointmentID, &requests.UpdateAppointment{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	repo := new(mockAppointmentRepository)
	uc := NewAppointmentUsecase(repo, new(mockReminderPublisher), zap.NewNop())

	appointmentID := primitive.NewObjectID().Hex()
	repo.On("DeleteByID", mock.Anything, appointmentID).Return(false, nil)

	result, err := uc.DeleteAppointment(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
}
