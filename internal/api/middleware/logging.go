package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет в лог каждый запрос с кодом ответа и длительностью
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			elapsed := time.Since(start)

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, rec.bytes, elapsed, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, rec.bytes, elapsed, requestID)
			default:
				logger.Info("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, rec.bytes, elapsed, requestID)
			}
		})
	}
}
