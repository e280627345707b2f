package middleware

import (
	"crypto/subtle"
	"net/http"

	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Admin guards staff-only routes with the shared ADMIN_TOKEN from config.
// Full authentication is out of scope for this service; staff operations
// only need to be unreachable for site visitors.
func Admin(token string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				log.Error("Admin token is not configured")
				utils.ResponseForbidden(w, "Staff access is not configured")
				return
			}

			supplied := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				log.Warn("Rejected staff request",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseForbidden(w, "Staff access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
