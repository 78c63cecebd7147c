package middlewares

import (
	"context"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"
	"internistika-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate guards doctor-only routes. The session token travels in the
// "token" header with a Bearer prefix; verified claims land in the request
// context for downstream handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderToken)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if !strings.HasPrefix(header, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		tokenString := strings.TrimPrefix(header, constvars.BearerTokenPrefix)
		claims, err := m.JWTManager.VerifyToken(tokenString)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DOCTOR_ID_KEY, claims.DoctorID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_DOCTOR_EMAIL_KEY, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
