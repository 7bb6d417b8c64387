// Package observability provides request logging middleware for the web service.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mergington/activities/internal/services/web/platform/httpx"
)

// statusRecorder captures the response status and body size for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(payload []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	written, err := rec.ResponseWriter.Write(payload)
	rec.bytes += written
	return written, err
}

// RequestLogger logs one line per request with status, size and latency.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			requestID := "-"
			path := "-"
			method := "-"
			if r != nil {
				method = strings.TrimSpace(r.Method)
				path = strings.TrimSpace(r.URL.Path)
				if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
					requestID = rid
				}
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				method,
				path,
				status,
				rec.bytes,
				time.Since(start),
				requestID,
			)
		})
	}
}
