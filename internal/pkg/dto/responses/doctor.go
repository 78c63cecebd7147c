package responses

import "internistika-service/internal/app/models"

// DoctorResult is the uniform envelope for single-doctor operations.
// Status is written verbatim as the HTTP status code and never serialized;
// the doctor key renders as null when no payload applies.
type DoctorResult struct {
	Status  int            `json:"-"`
	Message string         `json:"message"`
	Doctor  *models.Doctor `json:"doctor"`
}

// LoginResult extends the doctor envelope with the signed session token.
type LoginResult struct {
	Status  int            `json:"-"`
	Message string         `json:"message"`
	Token   string         `json:"token,omitempty"`
	Doctor  *models.Doctor `json:"doctor"`
}
