package patients

import (
	"context"
	"fmt"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"
	"internistika-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	VisitFinder       PopulatedVisitFinder
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository PatientRepository, visitFinder PopulatedVisitFinder, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		VisitFinder:       visitFinder,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return &responses.PatientResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	patient := &models.Patient{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		MiddleName:      request.MiddleName,
		Email:           request.Email,
		Gender:          request.Gender,
		DateOfBirth:     request.DateOfBirth,
		BloodGroup:      request.BloodGroup,
		Height:          request.Height,
		Weight:          request.Weight,
		Profession:      request.Profession,
		Location:        request.Location,
		Address:         request.Address,
		TelephoneNumber: request.TelephoneNumber,
	}
	patient.Touch(time.Now().UTC())

	created, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}

	return &responses.PatientResult{
		Status:  constvars.StatusCreated,
		Message: constvars.PatientCreatedMessage,
		Patient: created,
	}, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.PatientResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.PatientResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return &responses.PatientResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.PatientNotFoundByID,
		}, nil
	}

	return &responses.PatientResult{
		Status:  constvars.StatusOK,
		Message: constvars.PatientFetchedMessage,
		Patient: patient,
	}, nil
}

func (uc *patientUsecase) GetPatients(ctx context.Context, pagination *requests.Pagination) (*responses.PatientListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", pagination.Page),
		zap.Int("limit", pagination.Limit),
	)

	skip := int64((pagination.Page - 1) * pagination.Limit)
	patients, err := uc.PatientRepository.FindAll(ctx, skip, int64(pagination.Limit))
	if err != nil {
		return nil, err
	}

	return &responses.PatientListResult{
		Status:   constvars.StatusOK,
		Message:  constvars.PatientsFetchedMessage,
		Patients: patients,
	}, nil
}

func (uc *patientUsecase) GetPatientVisits(ctx context.Context, patientID string) (*responses.PopulatedVisitListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.PopulatedVisitListResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return &responses.PopulatedVisitListResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.PatientNotFoundByID,
		}, nil
	}

	visits, err := uc.VisitFinder.FindPopulatedByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &responses.PopulatedVisitListResult{
		Status:  constvars.StatusOK,
		Message: constvars.PatientVisitsFetchedMsg,
		Visits:  visits,
	}, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.PatientResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.PatientResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}
	if err := utils.ValidateStruct(request); err != nil {
		return &responses.PatientResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if request.FirstName != nil {
		update["firstName"] = *request.FirstName
	}
	if request.LastName != nil {
		update["lastName"] = *request.LastName
	}
	if request.MiddleName != nil {
		update["middleName"] = *request.MiddleName
	}
	if request.Email != nil {
		update["email"] = *request.Email
	}
	if request.Gender != nil {
		update["gender"] = *request.Gender
	}
	if request.DateOfBirth != nil {
		update["dateOfBirth"] = *request.DateOfBirth
	}
	if request.BloodGroup != nil {
		update["bloodGroup"] = *request.BloodGroup
	}
	if request.Height != nil {
		update["height"] = *request.Height
	}
	if request.Weight != nil {
		update["weight"] = *request.Weight
	}
	if request.Profession != nil {
		update["profession"] = *request.Profession
	}
	if request.Location != nil {
		update["location"] = *request.Location
	}
	if request.Address != nil {
		update["address"] = *request.Address
	}
	if request.TelephoneNumber != nil {
		update["telephoneNumber"] = *request.TelephoneNumber
	}

	patient, err := uc.PatientRepository.UpdateByID(ctx, patientID, update)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return &responses.PatientResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.PatientNotFoundByID,
		}, nil
	}

	return &responses.PatientResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.PatientUpdatedFormat, patientID),
	}, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) (*responses.PatientResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.PatientResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	deleted, err := uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return &responses.PatientResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.PatientNotFoundByID,
		}, nil
	}

	return &responses.PatientResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.PatientDeletedFormat, patientID),
	}, nil
}
