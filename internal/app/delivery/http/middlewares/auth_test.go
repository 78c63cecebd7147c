package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"internistika-service/internal/app/config"
	"internistika-service/internal/app/services/shared/jwtmanager"
	"internistika-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T) (*Middlewares, *jwtmanager.JWTManager) {
	t.Helper()
	internalConfig := &config.InternalConfig{
		App: config.App{AuthMaxAttempts: 5, AuthWindowInMinutes: 10},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	jwtManager := jwtmanager.NewJWTManager(internalConfig)
	return NewMiddlewares(zap.NewNop(), jwtManager, nil, internalConfig), jwtManager
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/get-doctor-by-email", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/doctors/get-doctor-by-email", nil)
	req.Header.Set(constvars.HeaderToken, "not-a-bearer-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenInjectsClaims(t *testing.T) {
	m, jwtManager := newTestMiddlewares(t)

	token, err := jwtManager.CreateToken("64f0c1d2a1b2c3d4e5f60718", "doctor@clinic.id")
	require.NoError(t, err)

	var gotDoctorID, gotEmail string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDoctorID, _ = r.Context().Value(constvars.CONTEXT_DOCTOR_ID_KEY).(string)
		gotEmail, _ = r.Context().Value(constvars.CONTEXT_DOCTOR_EMAIL_KEY).(string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/doctors/get-doctor-by-email", nil)
	req.Header.Set(constvars.HeaderToken, constvars.BearerTokenPrefix+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "64f0c1d2a1b2c3d4e5f60718", gotDoctorID)
	assert.Equal(t, "doctor@clinic.id", gotEmail)
}
