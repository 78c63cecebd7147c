package routers

import (
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Post("/create", patientController.CreatePatient)
	router.Get("/get-patient/{patientId}", patientController.GetPatientByID)
	router.Get("/get-patients", patientController.GetPatients)
	router.Get("/get-patients-visits/{patientId}", patientController.GetPatientVisits)
	router.Patch("/update/{patientId}", patientController.UpdatePatient)
	router.Delete("/delete/{patientId}", patientController.DeletePatient)
}
