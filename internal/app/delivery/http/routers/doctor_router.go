package routers

import (
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.With(middlewares.LoginRateLimit).Post("/signup", doctorController.Signup)
	router.With(middlewares.LoginRateLimit).Post("/login", doctorController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/get-doctor-by-email", doctorController.GetDoctorByEmail)
		r.Get("/get-doctor/{doctorId}", doctorController.GetDoctorByID)
		r.Patch("/update/{doctorId}", doctorController.UpdateDoctor)
		r.Delete("/delete/{doctorId}", doctorController.DeleteDoctor)
	})
}
