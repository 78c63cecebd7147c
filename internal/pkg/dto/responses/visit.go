package responses

import "internistika-service/internal/app/models"

type VisitResult struct {
	Status  int           `json:"-"`
	Message string        `json:"message"`
	Visit   *models.Visit `json:"visit"`
}

// VisitListResult carries raw visits (references unexpanded).
type VisitListResult struct {
	Status  int            `json:"-"`
	Message string         `json:"message"`
	Visits  []models.Visit `json:"visits"`
}

// PopulatedVisitListResult carries visits with doctor and patient documents
// embedded in place of their references.
type PopulatedVisitListResult struct {
	Status  int                     `json:"-"`
	Message string                  `json:"message"`
	Visits  []models.PopulatedVisit `json:"visits"`
}

type VisitMediaURLResult struct {
	Status     int    `json:"-"`
	Message    string `json:"message"`
	UploadURL  string `json:"uploadUrl,omitempty"`
	ObjectName string `json:"objectName,omitempty"`
}

type VisitMediaDownloadURLResult struct {
	Status      int    `json:"-"`
	Message     string `json:"message"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	ObjectName  string `json:"objectName,omitempty"`
}
