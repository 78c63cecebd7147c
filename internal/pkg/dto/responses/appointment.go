package responses

import "internistika-service/internal/app/models"

type AppointmentResult struct {
	Status      int                 `json:"-"`
	Message     string              `json:"message"`
	Appointment *models.Appointment `json:"appointment"`
}

type AppointmentListResult struct {
	Status       int                  `json:"-"`
	Message      string               `json:"message"`
	Appointments []models.Appointment `json:"appointments"`
}

// PopulatedAppointmentListResult is used by the doctor's active-appointment
// listing, which embeds the patient document.
type PopulatedAppointmentListResult struct {
	Status       int                           `json:"-"`
	Message      string                        `json:"message"`
	Appointments []models.PopulatedAppointment `json:"appointments"`
}
