package appointments

import (
	"context"
	"fmt"
	"internistika-service/internal/app/models"
	"internistika-service/internal/app/services/shared/reminderqueue"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"
	"internistika-service/internal/pkg/exceptions"
	"internistika-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const appointmentDateLayout = "2006-01-02"

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	ReminderPublisher     ReminderPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	reminderPublisher ReminderPublisher,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		ReminderPublisher:     reminderPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, doctorID, patientID string, request *requests.CreateAppointment) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID, patientID) {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}
	if err := utils.ValidateStruct(request); err != nil {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	doctorOID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	patientOID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	date, err := time.Parse(appointmentDateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment := &models.Appointment{
		Patient:      patientOID,
		Doctor:       doctorOID,
		Date:         &date,
		Time:         request.Time,
		MarkedAsDone: false,
	}
	appointment.Touch(time.Now().UTC())

	created, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		return nil, err
	}

	// Reminder delivery is best effort; a broker hiccup must not undo a
	// stored appointment.
	reminder := &reminderqueue.ReminderMessage{
		AppointmentID: created.ID.Hex(),
		DoctorID:      doctorID,
		PatientID:     patientID,
		Date:          created.Date,
		Time:          created.Time,
	}
	if err := uc.ReminderPublisher.Publish(ctx, reminder); err != nil {
		uc.Log.Warn("appointmentUsecase.CreateAppointment failed to publish reminder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.AppointmentResult{
		Status:      constvars.StatusCreated,
		Message:     constvars.AppointmentCreatedMessage,
		Appointment: created,
	}, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(appointmentID) {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return &responses.AppointmentResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.AppointmentNotFoundByID,
		}, nil
	}

	return &responses.AppointmentResult{
		Status:      constvars.StatusOK,
		Message:     constvars.AppointmentFetchedMessage,
		Appointment: appointment,
	}, nil
}

func (uc *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID string, pagination *requests.Pagination) (*responses.PopulatedAppointmentListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetDoctorAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.PopulatedAppointmentListResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	skip := int64((pagination.Page - 1) * pagination.Limit)
	appointments, err := uc.AppointmentRepository.FindActivePopulatedByDoctor(ctx, doctorID, skip, int64(pagination.Limit))
	if err != nil {
		return nil, err
	}

	return &responses.PopulatedAppointmentListResult{
		Status:       constvars.StatusOK,
		Message:      constvars.AppointmentsFetchedMessage,
		Appointments: appointments,
	}, nil
}

func (uc *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID string) (*responses.AppointmentListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetPatientAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.AppointmentListResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &responses.AppointmentListResult{
		Status:       constvars.StatusOK,
		Message:      constvars.AppointmentsFetchedMessage,
		Appointments: appointments,
	}, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(appointmentID) {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}
	if err := utils.ValidateStruct(request); err != nil {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if request.Date != nil {
		date, err := time.Parse(appointmentDateLayout, *request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		update["date"] = date
	}
	if request.Time != nil {
		update["time"] = *request.Time
	}
	if request.MarkedAsDone != nil {
		update["markedAsDone"] = *request.MarkedAsDone
	}

	appointment, err := uc.AppointmentRepository.UpdateByID(ctx, appointmentID, update)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return &responses.AppointmentResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.AppointmentNotFoundByID,
		}, nil
	}

	return &responses.AppointmentResult{
		Status:      constvars.StatusCreated,
		Message:     fmt.Sprintf(constvars.AppointmentUpdatedFormat, appointmentID),
		Appointment: appointment,
	}, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(appointmentID) {
		return &responses.AppointmentResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	deleted, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return &responses.AppointmentResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.AppointmentNotFoundByID,
		}, nil
	}

	return &responses.AppointmentResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.AppointmentDeletedFormat, appointmentID),
	}, nil
}
