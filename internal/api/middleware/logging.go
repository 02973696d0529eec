package middleware

import (
	"net/http"
	"time"
)

// RequestLogger узкий интерфейс логгера для middleware
type RequestLogger interface {
	Info(format string, v ...interface{})
}

// Logging логирует метод, путь, статус и длительность каждого запроса
func Logging(logger RequestLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
