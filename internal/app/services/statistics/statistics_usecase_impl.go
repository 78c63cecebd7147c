package statistics

import (
	"context"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/dto/responses"
	"internistika-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type statisticsUsecase struct {
	StatisticsRepository StatisticsRepository
	Log                  *zap.Logger
}

func NewStatisticsUsecase(statisticsRepository StatisticsRepository, logger *zap.Logger) StatisticsUsecase {
	return &statisticsUsecase{
		StatisticsRepository: statisticsRepository,
		Log:                  logger,
	}
}

func (uc *statisticsUsecase) GetDoctorStatistics(ctx context.Context, doctorID string) (*responses.StatisticsResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("statisticsUsecase.GetDoctorStatistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if utils.MissingAnyField(doctorID) {
		return &responses.StatisticsResult{
			Status:  constvars.StatusBadRequest,
			Message: constvars.ErrClientMissingFields,
		}, nil
	}

	appointments, err := uc.StatisticsRepository.CountActiveAppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	visits, err := uc.StatisticsRepository.CountVisitsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	patients, err := uc.StatisticsRepository.CountPatients(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.StatisticsResult{
		Status:       constvars.StatusOK,
		Message:      constvars.StatisticsFetchedMessage,
		Appointments: appointments,
		Visits:       visits,
		Patients:     patients,
	}, nil
}
