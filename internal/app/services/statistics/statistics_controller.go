package statistics

import (
	"context"
	"internistika-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StatisticsController struct {
	StatisticsUsecase StatisticsUsecase
	Log               *zap.Logger
}

func NewStatisticsController(statisticsUsecase StatisticsUsecase, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{
		StatisticsUsecase: statisticsUsecase,
		Log:               logger,
	}
}

func (ctrl *StatisticsController) GetDoctorStatistics(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StatisticsUsecase.GetDoctorStatistics(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}
