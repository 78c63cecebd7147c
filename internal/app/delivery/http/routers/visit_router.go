package routers

import (
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/visits"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, middlewares *middlewares.Middlewares, visitController *visits.VisitController) {
	router.Use(middlewares.Authenticate)

	router.Post("/create/{doctorId}/{patientId}", visitController.CreateVisit)
	router.Get("/get-patient-visits/{patientId}", visitController.GetPatientVisits)
	router.Get("/get-visits/{doctorId}", visitController.GetDoctorVisits)
	router.Get("/get-visit/{visitId}", visitController.GetVisitByID)
	router.Patch("/update/{visitId}", visitController.UpdateVisit)
	router.Delete("/delete/{visitId}", visitController.DeleteVisit)
	router.Post("/media/upload-url", visitController.MediaUploadURL)
	router.Get("/media/download-url", visitController.MediaDownloadURL)
}
