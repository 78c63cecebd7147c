package doctors

import (
	"context"
	"errors"
	"internistika-service/internal/app/models"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateEmail is returned by Insert when the unique email index
// rejects the document.
var ErrDuplicateEmail = errors.New("doctor email already registered")

// DoctorRepository. Lookups return (nil, nil) when no document matches so
// absence never travels as an error.
type DoctorRepository interface {
	Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpdateByID(ctx context.Context, doctorID string, update bson.M) (*models.Doctor, error)
	DeleteByID(ctx context.Context, doctorID string) (bool, error)
}

// TokenIssuer signs session tokens for a doctor.
type TokenIssuer interface {
	CreateToken(doctorID, email string) (string, error)
}

type DoctorUsecase interface {
	Signup(ctx context.Context, request *requests.SignupDoctor) (*responses.DoctorResult, error)
	Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginResult, error)
	GetDoctorByEmail(ctx context.Context, email string) (*responses.DoctorResult, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.DoctorResult, error)
	DeleteDoctor(ctx context.Context, doctorID string) (*responses.DoctorResult, error)
}
