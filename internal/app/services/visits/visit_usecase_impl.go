package visits

import (
	"context"
	"fmt"
	"internistika-service/internal/app/config"
	"internistika-service/internal/app/models"
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

type visitUsecase struct {
	VisitRepository VisitRepository
	PatientLinker   PatientLinker
	MediaStorage    MediaStorage
	BucketName      string
	Log             *zap.Logger
}

func NewVisitUsecase(
	visitRepository VisitRepository,
	patientLinker PatientLinker,
	mediaStorage MediaStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) VisitUsecase {
	return &visitUsecase{
		VisitRepository: visitRepository,
		PatientLinker:   patientLinker,
		MediaStorage:    mediaStorage,
		BucketName:      internalConfig.Minio.BucketName,
		Log:             logger,
	}
}

func (uc *visitUsecase) CreateVisit(ctx context.Context, doctorID, patientID string, request *requests.CreateVisit) (*responses.VisitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.CreateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID, patientID) {
		return &responses.VisitResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}
	if err := utils.ValidateStruct(request); err != nil {
		return &responses.VisitResult{
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

	visit := &models.Visit{
		Rentgen:    request.Rentgen,
		CT:         request.CT,
		Echo:       request.Echo,
		Analysis:   request.Analysis,
		Type:       request.Type,
		Drugs:      request.Drugs,
		Injections: request.Injections,
		Diagnosis:  request.Diagnosis,
		Patient:    patientOID,
		Doctor:     doctorOID,
	}
	visit.Touch(time.Now().UTC())

	created, err := uc.VisitRepository.Insert(ctx, visit)
	if err != nil {
		return nil, err
	}

	// Best effort; the visit itself is already stored and the populated
	// listings query the visit collection directly.
	if err := uc.PatientLinker.PushVisit(ctx, patientOID, created.ID); err != nil {
		uc.Log.Warn("visitUsecase.CreateVisit failed to link visit to patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.VisitResult{
		Status:  constvars.StatusCreated,
		Message: constvars.VisitCreatedMessage,
		Visit:   created,
	}, nil
}

func (uc *visitUsecase) GetPatientVisits(ctx context.Context, patientID string) (*responses.VisitListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.GetPatientVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(patientID) {
		return &responses.VisitListResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	visits, err := uc.VisitRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &responses.VisitListResult{
		Status:  constvars.StatusOK,
		Message: constvars.VisitsFetchedMessage,
		Visits:  visits,
	}, nil
}

func (uc *visitUsecase) GetDoctorVisits(ctx context.Context, doctorID string, pagination *requests.Pagination) (*responses.PopulatedVisitListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.GetDoctorVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.PopulatedVisitListResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	skip := int64((pagination.Page - 1) * pagination.Limit)
	visits, err := uc.VisitRepository.FindPopulatedByDoctor(ctx, doctorID, skip, int64(pagination.Limit))
	if err != nil {
		return nil, err
	}

	return &responses.PopulatedVisitListResult{
		Status:  constvars.StatusOK,
		Message: constvars.VisitsFetchedMessage,
		Visits:  visits,
	}, nil
}

func (uc *visitUsecase) GetVisitByID(ctx context.Context, visitID string) (*responses.VisitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.GetVisitByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(visitID) {
		return &responses.VisitResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return &responses.VisitResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.VisitNotFoundByID,
		}, nil
	}

	return &responses.VisitResult{
		Status:  constvars.StatusOK,
		Message: fmt.Sprintf(constvars.VisitFetchedFormat, visitID),
		Visit:   visit,
	}, nil
}

func (uc *visitUsecase) UpdateVisit(ctx context.Context, visitID string, request *requests.UpdateVisit) (*responses.VisitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.UpdateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(visitID) {
		return &responses.VisitResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if request.Rentgen != nil {
		update["rentgen"] = request.Rentgen
	}
	if request.CT != nil {
		update["ct"] = request.CT
	}
	if request.Echo != nil {
		update["echo"] = request.Echo
	}
	if request.Analysis != nil {
		update["analysis"] = *request.Analysis
	}
	if request.Type != nil {
		update["type"] = *request.Type
	}
	if request.Drugs != nil {
		update["drugs"] = *request.Drugs
	}
	if request.Injections != nil {
		update["injections"] = *request.Injections
	}
	if request.Diagnosis != nil {
		update["diagnosis"] = *request.Diagnosis
	}

	visit, err := uc.VisitRepository.UpdateByID(ctx, visitID, update)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return &responses.VisitResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.VisitNotFoundByID,
		}, nil
	}

	return &responses.VisitResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.VisitUpdatedFormat, visitID),
		Visit:   visit,
	}, nil
}

func (uc *visitUsecase) DeleteVisit(ctx context.Context, visitID string) (*responses.VisitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.DeleteVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(visitID) {
		return &responses.VisitResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	deleted, err := uc.VisitRepository.DeleteByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return &responses.VisitResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.VisitNotFoundByID,
		}, nil
	}

	return &responses.VisitResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.VisitDeletedFormat, visitID),
	}, nil
}

func (uc *visitUsecase) MediaUploadURL(ctx context.Context, request *requests.VisitMediaUploadURL) (*responses.VisitMediaURLResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.MediaUploadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return &responses.VisitMediaURLResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	objectName := utils.GenerateMediaObjectName(request.Kind, request.FileName)
	uploadURL, err := uc.MediaStorage.PresignedUploadURL(ctx, uc.BucketName, objectName)
	if err != nil {
		return nil, err
	}

	return &responses.VisitMediaURLResult{
		Status:     constvars.StatusOK,
		Message:    constvars.VisitMediaURLMessage,
		UploadURL:  uploadURL,
		ObjectName: objectName,
	}, nil
}

func (uc *visitUsecase) MediaDownloadURL(ctx context.Context, objectName string) (*responses.VisitMediaDownloadURLResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.MediaDownloadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(objectName) {
		return &responses.VisitMediaDownloadURLResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	downloadURL, err := uc.MediaStorage.PresignedDownloadURL(ctx, uc.BucketName, objectName)
	if err != nil {
		return nil, err
	}

	return &responses.VisitMediaDownloadURLResult{
		Status:      constvars.StatusOK,
		Message:     constvars.VisitMediaURLMessage,
		DownloadURL: downloadURL,
		ObjectName:  objectName,
	}, nil
}
