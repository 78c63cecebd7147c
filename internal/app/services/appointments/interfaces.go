package appointments

import (
	"context"
	"internistika-service/internal/app/models"
	"internistika-service/internal/app/services/shared/reminderqueue"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindActivePopulatedByDoctor(ctx context.Context, doctorID string, skip, limit int64) ([]models.PopulatedAppointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateByID(ctx context.Context, appointmentID string, update bson.M) (*models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID string) (bool, error)
}

// ReminderPublisher pushes a reminder event when an appointment is created.
// Publish failures are logged and swallowed by the usecase.
type ReminderPublisher interface {
	Publish(ctx context.Context, message *reminderqueue.ReminderMessage) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, doctorID, patientID string, request *requests.CreateAppointment) (*responses.AppointmentResult, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error)
	GetDoctorAppointments(ctx context.Context, doctorID string, pagination *requests.Pagination) (*responses.PopulatedAppointmentListResult, error)
	GetPatientAppointments(ctx context.Context, patientID string) (*responses.AppointmentListResult, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.AppointmentResult, error)
	DeleteAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error)
}
