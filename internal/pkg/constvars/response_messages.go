package constvars

// Success messages, kept close to the legacy API wording so existing
// clients keep rendering them as-is.
const (
	SignupSuccessMessage = "Your account has been created successfully!"
	LoginSuccessMessage  = "Log in successful!"

	DoctorFetchedByEmailFormat = "Fetched doctor with email %s."
	DoctorFetchedByIDFormat    = "Fetched doctor with id %s."
	DoctorUpdatedFormat        = "Doctor with id %s has been updated successfully."
	DoctorDeletedFormat        = "Doctor with id %s has been deleted successfully."
	DoctorNotFoundByEmail      = "No doctor exists with the email specified."
	DoctorNotFoundByID         = "No doctor exists with the id specified."
	DoctorNotFoundByIDFormat   = "No doctor with id %s exists."

	PatientCreatedMessage     = "Patient was created successfully!"
	PatientFetchedMessage     = "Fetched patient."
	PatientsFetchedMessage    = "Fetched patients."
	PatientVisitsFetchedMsg   = "Fetched patient visits."
	PatientUpdatedFormat      = "Patient with id %s has been updated successfully."
	PatientDeletedFormat      = "Patient with id %s has been deleted successfully."
	PatientNotFoundByID       = "No patient exists with the id specified."
	PatientNotFoundByIDFormat = "No patient with id %s exists."

	VisitCreatedMessage     = "Visit was created successfully!"
	VisitFetchedFormat      = "Fetched visit with id %s."
	VisitsFetchedMessage    = "Fetched visits."
	VisitUpdatedFormat      = "Visit with id %s has been updated successfully."
	VisitDeletedFormat      = "Visit with id %s has been deleted successfully."
	VisitNotFoundByID       = "No visit exists with the id specified."
	VisitNotFoundByIDFormat = "No visit with id %s exists."
	VisitMediaURLMessage    = "Generated media url."

	AppointmentCreatedMessage     = "Appointment was created successfully!"
	AppointmentFetchedMessage     = "Fetched appointment."
	AppointmentsFetchedMessage    = "Fetched appointments."
	AppointmentUpdatedFormat      = "Appointment with id %s has been updated successfully."
	AppointmentDeletedFormat      = "Appointment with id %s has been deleted successfully."
	AppointmentNotFoundByID       = "No appointment exists with the id specified."
	AppointmentNotFoundByIDFormat = "No appointment with id %s exists."

	StatisticsFetchedMessage = "Fetched doctor statistics."
)

const (
	ResponseUnknown = "unknown"
)
