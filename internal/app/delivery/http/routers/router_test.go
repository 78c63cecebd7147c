package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"internistika-service/internal/app/config"
	"internistika-service/internal/app/delivery/http/middlewares"
	"internistika-service/internal/app/services/appointments"
	"internistika-service/internal/app/services/doctors"
	"internistika-service/internal/app/services/patients"
	"internistika-service/internal/app/services/shared/jwtmanager"
	"internistika-service/internal/app/services/statistics"
	"internistika-service/internal/app/services/visits"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// passthroughRedis keeps the login rate limiter permissive in routing tests.
type passthroughRedis struct{}

func (passthroughRedis) IncrementWithTTL(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 1, nil
}
func (passthroughRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (passthroughRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (passthroughRedis) Delete(ctx context.Context, key string) error { return nil }

type stubDoctorUsecase struct{}

func (stubDoctorUsecase) Signup(ctx context.Context, request *requests.SignupDoctor) (*responses.DoctorResult, error) {
	return &responses.DoctorResult{Status: 201, Message: "Created new doctor account."}, nil
}
func (stubDoctorUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginResult, error) {
	return &responses.LoginResult{Status: 200, Message: "Logged in successfully."}, nil
}
func (stubDoctorUsecase) GetDoctorByEmail(ctx context.Context, email string) (*responses.DoctorResult, error) {
	return &responses.DoctorResult{Status: 200}, nil
}
func (stubDoctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	return &responses.DoctorResult{Status: 200}, nil
}
func (stubDoctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.DoctorResult, error) {
	return &responses.DoctorResult{Status: 201}, nil
}
func (stubDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	return &responses.DoctorResult{Status: 201}, nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:      "/api/v1",
			MaxRequests:         100,
			AuthMaxAttempts:     5,
			AuthWindowInMinutes: 10,
		},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	jwtManager := jwtmanager.NewJWTManager(internalConfig)
	m := middlewares.NewMiddlewares(logger, jwtManager, passthroughRedis{}, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		m,
		doctors.NewDoctorController(stubDoctorUsecase{}, logger),
		patients.NewPatientController(nil, logger),
		visits.NewVisitController(nil, logger),
		appointments.NewAppointmentController(nil, logger),
		statistics.NewStatisticsController(nil, logger),
	)
	return router
}

func TestRouter_SignupIsPublic(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"firstName":"Ana","lastName":"Marić","email":"ana@clinic.id","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/signup", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/doctors/get-doctor-by-email"},
		{http.MethodPost, "/api/v1/doctors/patients/create"},
		{http.MethodGet, "/api/v1/doctors/visits/get-visits/64f0c1d2a1b2c3d4e5f60718"},
		{http.MethodPost, "/api/v1/doctors/appointments/create/64f0c1d2a1b2c3d4e5f60718/64f0c1d2a1b2c3d4e5f60719"},
		{http.MethodGet, "/api/v1/doctors/statistics/64f0c1d2a1b2c3d4e5f60718"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
