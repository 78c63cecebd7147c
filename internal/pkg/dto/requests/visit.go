package requests

// CreateVisit covers POST /visits/create/{doctorId}/{patientId}. Only
// analysis and type are mandatory; media lists hold object names handed out
// by the media upload-url endpoint.
type CreateVisit struct {
	Rentgen    []string `json:"rentgen"`
	CT         []string `json:"ct"`
	Echo       []string `json:"echo"`
	Analysis   string   `json:"analysis" validate:"required"`
	Type       string   `json:"type" validate:"required"`
	Drugs      string   `json:"drugs"`
	Injections string   `json:"injections"`
	Diagnosis  string   `json:"diagnosis"`
}

// UpdateVisit covers PATCH /visits/update/{visitId}.
type UpdateVisit struct {
	Rentgen    []string `json:"rentgen"`
	CT         []string `json:"ct"`
	Echo       []string `json:"echo"`
	Analysis   *string  `json:"analysis"`
	Type       *string  `json:"type"`
	Drugs      *string  `json:"drugs"`
	Injections *string  `json:"injections"`
	Diagnosis  *string  `json:"diagnosis"`
}

// VisitMediaUploadURL covers POST /visits/media/upload-url.
type VisitMediaUploadURL struct {
	FileName string `json:"fileName" validate:"required"`
	Kind     string `json:"kind" validate:"required,oneof=rentgen ct echo"`
}
