package doctors

import (
	"context"
	"errors"
	"fmt"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"
	"internistika-service/internal/pkg/exceptions"
	"internistika-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	TokenIssuer      TokenIssuer
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository DoctorRepository, tokenIssuer TokenIssuer, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		TokenIssuer:      tokenIssuer,
		Log:              logger,
	}
}

func (uc *doctorUsecase) Signup(ctx context.Context, request *requests.SignupDoctor) (*responses.DoctorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return &responses.DoctorResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.DoctorResult{
			Status:  constvars.StatusConflict,
			Message: constvars.ErrClientEmailAlreadyExists,
		}, nil
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	doctor := &models.Doctor{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  hashed,
	}
	doctor.Touch(time.Now().UTC())

	created, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return &responses.DoctorResult{
				Status:  constvars.StatusConflict,
				Message: constvars.ErrClientEmailAlreadyExists,
			}, nil
		}
		return nil, err
	}

	return &responses.DoctorResult{
		Status:  constvars.StatusCreated,
		Message: constvars.SignupSuccessMessage,
		Doctor:  created,
	}, nil
}

func (uc *doctorUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return &responses.LoginResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return &responses.LoginResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.ErrClientEmailNotRegistered,
		}, nil
	}

	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return &responses.LoginResult{
			Status:  constvars.StatusForbidden,
			Message: constvars.ErrClientInvalidEmailOrPassword,
		}, nil
	}

	token, err := uc.TokenIssuer.CreateToken(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		return nil, err
	}

	return &responses.LoginResult{
		Status:  constvars.StatusOK,
		Message: constvars.LoginSuccessMessage,
		Token:   token,
		Doctor:  doctor,
	}, nil
}

func (uc *doctorUsecase) GetDoctorByEmail(ctx context.Context, email string) (*responses.DoctorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if utils.MissingAnyField(email) {
		return &responses.DoctorResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return &responses.DoctorResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.DoctorNotFoundByEmail,
		}, nil
	}

	return &responses.DoctorResult{
		Status:  constvars.StatusOK,
		Message: fmt.Sprintf(constvars.DoctorFetchedByEmailFormat, email),
		Doctor:  doctor,
	}, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.DoctorResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return &responses.DoctorResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.DoctorNotFoundByID,
		}, nil
	}

	return &responses.DoctorResult{
		Status:  constvars.StatusOK,
		Message: fmt.Sprintf(constvars.DoctorFetchedByIDFormat, doctorID),
		Doctor:  doctor,
	}, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.DoctorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.DoctorResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}
	if err := utils.ValidateStruct(request); err != nil {
		return &responses.DoctorResult{
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
	if request.Email != nil {
		update["email"] = *request.Email
	}

	doctor, err := uc.DoctorRepository.UpdateByID(ctx, doctorID, update)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return &responses.DoctorResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.DoctorNotFoundByID,
		}, nil
	}

	return &responses.DoctorResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.DoctorUpdatedFormat, doctorID),
		Doctor:  doctor,
	}, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.DoctorResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	deleted, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return &responses.DoctorResult{
			Status:  constvars.StatusNotFound,
			Message: constvars.DoctorNotFoundByID,
		}, nil
	}

	return &responses.DoctorResult{
		Status:  constvars.StatusCreated,
		Message: fmt.Sprintf(constvars.DoctorDeletedFormat, doctorID),
	}, nil
}
