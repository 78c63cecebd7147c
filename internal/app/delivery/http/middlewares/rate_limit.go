package middlewares

import (
	"fmt"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"
	"internistika-service/internal/pkg/utils"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LoginRateLimit throttles the auth endpoints per client IP using a fixed
// Redis window. A Redis outage lets requests through rather than locking
// every doctor out of the API.
func (m *Middlewares) LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientIP = r.RemoteAddr
		}

		key := fmt.Sprintf(constvars.RateLimitLoginKeyFormat, clientIP)
		window := time.Duration(m.InternalConfig.App.AuthWindowInMinutes) * time.Minute

		count, err := m.RedisRepository.IncrementWithTTL(r.Context(), key, window)
		if err != nil {
			m.Log.Warn("login rate limit check skipped", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(m.InternalConfig.App.AuthMaxAttempts) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
