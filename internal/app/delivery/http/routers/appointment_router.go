package routers

import (
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/create/{doctorId}/{patientId}", appointmentController.CreateAppointment)
	router.Get("/get-appointment/{appointmentId}", appointmentController.GetAppointmentByID)
	router.Get("/get-doctor-appointments/{doctorId}", appointmentController.GetDoctorAppointments)
	router.Get("/get-patient-appointments/{patientId}", appointmentController.GetPatientAppointments)
	router.Patch("/update/{appointmentId}", appointmentController.UpdateAppointment)
	router.Delete("/delete/{appointmentId}", appointmentController.DeleteAppointment)
}
