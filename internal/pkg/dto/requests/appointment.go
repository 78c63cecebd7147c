package requests

// CreateAppointment covers POST /appointments/create/{doctorId}/{patientId}.
type CreateAppointment struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required"`
}

// UpdateAppointment covers PATCH /appointments/update/{appointmentId}.
// Setting MarkedAsDone to true removes the appointment from active listings.
type UpdateAppointment struct {
	Date         *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         *string `json:"time"`
	MarkedAsDone *bool   `json:"markedAsDone"`
}
