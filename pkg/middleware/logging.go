package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

// Renderizar gráficos e exportar planilhas passa disso só com dataset grande
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware gera o correlation id da requisição e registra seu início e fim
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			dev := log.IsDevelopment()

			logStart(r, correlationID, dev)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()
			next.ServeHTTP(rec, r)
			elapsed := time.Since(started)

			fields := log.Fields{
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    rec.status,
				"duration_ms":    elapsed.Milliseconds(),
				"correlation_id": correlationID,
			}
			logger := log.L.WithFields(fields)

			msg := "request finished"
			if dev {
				msg = fmt.Sprintf("%s %s in %s", statusMark(rec.status), http.StatusText(rec.status), formatDuration(elapsed))
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("slow request: %s %s took %s", r.Method, r.URL.Path, formatDuration(elapsed))
			}
		})
	}
}

func logStart(r *http.Request, correlationID string, dev bool) {
	if dev {
		log.L.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).Debug("→ request started")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
	}).Info("request started")
}

func statusMark(status int) string {
	if status >= http.StatusBadRequest {
		return "✗"
	}
	return "✓"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
