package responses

import "internistika-service/internal/app/models"

type PatientResult struct {
	Status  int             `json:"-"`
	Message string          `json:"message"`
	Patient *models.Patient `json:"patient"`
}

type PatientListResult struct {
	Status   int              `json:"-"`
	Message  string           `json:"message"`
	Patients []models.Patient `json:"patients"`
}
