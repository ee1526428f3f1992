package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"method": req.Method,
						"path":   req.URL.Path,
						"route":  routeTemplate(req),
					}).Errorf("http: panic serving request: %v\n%s", r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					http.Error(respWriter, "internal server error", http.StatusInternalServerError)
				}
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}
