package routers

import (
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/statistics"

	"github.com/go-chi/chi/v5"
)

func attachStatisticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, statisticsController *statistics.StatisticsController) {
	router.With(middlewares.Authenticate).Get("/statistics/{doctorId}", statisticsController.GetDoctorStatistics)
}
