package responses

// StatisticsResult reports per-doctor counts. The shape matches the legacy
// stats endpoint: three counters plus a message.
type StatisticsResult struct {
	Status       int    `json:"-"`
	Message      string `json:"message"`
	Appointments int64  `json:"appointments"`
	Visits       int64  `json:"visits"`
	Patients     int64  `json:"patients"`
}
