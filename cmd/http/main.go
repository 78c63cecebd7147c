package main

import (
	"context"
	"internistika-service/internal/app/config"
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/delivery/http/routers"
	"internistika-service/internal/app/drivers/database"
	"internistika-service/internal/app/drivers/logger"
	"internistika-service/internal/app/drivers/messaging"
	"internistika-service/internal/app/drivers/storage"
	"internistika-service/internal/app/services/appointments"
	"internistika-service/internal/app/services/doctors"
	"internistika-service/internal/app/services/patients"
	"internistika-service/internal/app/services/shared/jwtmanager"
	sharedredis "internistika-service/internal/app/services/shared/redis"
	"internistika-service/internal/app/services/shared/reminderqueue"
	sharedstorage "internistika-service/internal/app/services/shared/storage"
	"internistika-service/internal/app/services/statistics"
	"internistika-service/internal/app/services/visits"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig)
	reminderQueue, err := reminderqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to set up reminder queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, redisRepository, bootstrap.InternalConfig)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, jwtManager, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Patient and Visit repositories cross-reference each other: visits link
	// back into the owning patient document, patient listings pull populated
	// visits.
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	visitMongoRepository := visits.NewVisitMongoRepository(bootstrap.MongoDB, dbName)

	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, visitMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	visitUsecase := visits.NewVisitUsecase(visitMongoRepository, patientMongoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	visitController := visits.NewVisitController(visitUsecase, bootstrap.Logger)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, reminderQueue, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Statistics
	statisticsMongoRepository := statistics.NewStatisticsMongoRepository(bootstrap.MongoDB, dbName)
	statisticsUsecase := statistics.NewStatisticsUsecase(statisticsMongoRepository, bootstrap.Logger)
	statisticsController := statistics.NewStatisticsController(statisticsUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		doctorController,
		patientController,
		visitController,
		appointmentController,
		statisticsController,
	)
}
