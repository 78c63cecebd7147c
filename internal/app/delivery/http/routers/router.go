package routers

import (
	"internistika-service/internal/app/config"
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/appointments"
	"internistika-service/internal/app/services/doctors"
	"internistika-service/internal/app/services/patients"
	"internistika-service/internal/app/services/statistics"
	"internistika-service/internal/app/services/visits"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	patientController *patients.PatientController,
	visitController *visits.VisitController,
	appointmentController *appointments.AppointmentController,
	statisticsController *statistics.StatisticsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/visits", func(r chi.Router) {
				attachVisitRoutes(r, middlewares, visitController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			attachStatisticsRoutes(r, middlewares, statisticsController)
		})
	})
}
