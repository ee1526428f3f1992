package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
)

// LogRequest runs inside AuthCheck, so the caller is already known.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			fields := log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"route":    routeTemplate(r),
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
				"ua":       r.Header.Get("User-Agent"),
			}
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				fields["user_id"] = userID.String()
			} else if r.Header.Get(AdminTokenHeader) != "" {
				fields["admin"] = true
			}

			log.WithFields(fields).Trace(" ====> request served")
		})
	}
}
