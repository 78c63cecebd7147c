package statistics

import (
	"context"
	"internistika-service/internal/pkg/dto/responses"
)

type StatisticsRepository interface {
	CountActiveAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountVisitsByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountPatients(ctx context.Context) (int64, error)
}

type StatisticsUsecase interface {
	GetDoctorStatistics(ctx context.Context, doctorID string) (*responses.StatisticsResult, error)
}
