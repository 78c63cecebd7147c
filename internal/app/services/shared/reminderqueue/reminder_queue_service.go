package reminderqueue

import (
	"context"
	"internistika-service/internal/app/config"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ReminderMessage is the payload published when an appointment is created.
type ReminderMessage struct {
	AppointmentID string     `json:"appointment_id"`
	DoctorID      string     `json:"doctor_id"`
	PatientID     string     `json:"patient_id"`
	Date          *time.Time `json:"date"`
	Time          string     `json:"time"`
}

type ReminderPublisher interface {
	Publish(ctx context.Context, message *ReminderMessage) error
}

// Service publishes appointment reminders to a durable queue. Publishing is
// throttled; callers treat failures as best-effort and never fail the
// originating request.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	limiter   *rate.Limiter
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, internalConfig *config.InternalConfig, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	queueName := internalConfig.RabbitMQ.ReminderQueue
	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	perSecond := internalConfig.RabbitMQ.PublishRatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}, nil
}

func (s *Service) Publish(ctx context.Context, message *ReminderMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReminderQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
